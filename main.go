// main package for gendocs command-line tool
// Package main is the entry point for the gendocs CLI.
package main

import "gendocs.dev/pkg/gendocs/cmd"

func main() {
	cmd.Execute()
}
