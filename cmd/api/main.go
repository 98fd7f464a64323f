// Package main is the graph explorer command. By default it serves the causal
// graph and prediction endpoints over HTTP; subcommands inspect the same graph
// from the terminal.
package main

func main() {
	Execute()
}
