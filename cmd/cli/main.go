package main

import "titlelookup/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
