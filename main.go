// Package main is the entry point for the inctrim CLI.
package main

import "inctrim.dev/pkg/inctrim/cmd"

func main() {
	cmd.Execute()
}
