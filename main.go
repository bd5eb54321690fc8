package main

import "github.com/tranvictor/uniquote/cmd"

func main() {
	cmd.Execute()
}
