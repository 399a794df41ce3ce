package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CollapseText extracts the visible text of a node with runs of
// whitespace squashed down, the way a browser would display it.
func CollapseText(node *html.Node) string {
	text := GetText(node)
	out := strings.Builder{}
	for _, c := range text {
		if unicode.IsPrint(c) {
			out.WriteRune(c)
		}
	}
	collapsed := innerWhitespace.ReplaceAllString(out.String(), " ")
	return strings.Trim(collapsed, " \t\n")
}
