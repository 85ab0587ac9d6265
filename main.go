package main

import "room-cli/cmd"

func main() {
	cmd.Execute()
}
