package main

import (
	"os"

	"github.com/hailey21/notion-blog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
