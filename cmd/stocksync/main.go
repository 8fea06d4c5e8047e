package main

import (
	"stocksync/cmd/stocksync/commands"
	"stocksync/lib/util/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
