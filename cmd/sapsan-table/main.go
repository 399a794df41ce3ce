package main

import (
	"sapsan-table/cmd/sapsan-table/commands"
	"sapsan-table/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
