// Package main implements the holocron-api binary: the HTTP API over the
// Star Wars catalog and user favorites, plus migration and seeding commands.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
