// Package main is the entry point for the meshtrace CLI.
package main

import "meshtrace.dev/pkg/meshtrace/cmd"

func main() {
	cmd.Execute()
}
