// main package for minbool command-line tool
// Package main is the entry point for the minbool CLI.
package main

import "minbool.dev/pkg/minbool/cmd"

func main() {
	cmd.Execute()
}
