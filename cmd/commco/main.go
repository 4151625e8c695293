package main

import (
	"os"

	"github.com/aadarshkt/comment-copilot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
