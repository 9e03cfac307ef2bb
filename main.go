package main

import "github.com/tranvictor/ethproxy/cmd"

func main() {
	cmd.Execute()
}
