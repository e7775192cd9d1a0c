package main

import "github.com/agentic-research/localediff/cmd"

func main() {
	cmd.Execute()
}
