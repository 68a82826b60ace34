// Package main is the entry point for the warstats CLI tool, which parses
// strategy-game combat logs and reports per-player kill/loss/troop statistics.
package main

import "github.com/pable/go-war-stats/cmd"

func main() {
	cmd.Execute()
}
