package htmlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, fragment string) *html.Node {
	node, err := html.Parse(strings.NewReader(fragment))
	require.NoError(t, err)
	return node
}

func TestGetText(t *testing.T) {
	node := parseFragment(t, "<td>3 990 <b>₽</b></td>")
	require.Equal(t, "3 990 ₽", GetText(node))
}

func TestCollapseText(t *testing.T) {
	node := parseFragment(t, "<th>\n  02.01.2026,\n  Пятница\n</th>")
	require.Equal(t, "02.01.2026, Пятница", CollapseText(node))
}
