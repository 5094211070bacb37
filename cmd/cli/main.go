// ChatLens - Chat Transcript Analysis Tool
//
// ChatLens is a batch analysis tool for exported chat transcripts. It parses
// a chat export and reports message statistics for the whole group or a
// single sender.
package main

import (
	"os"

	"github.com/chatlens/chatlens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
