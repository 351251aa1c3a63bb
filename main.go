package main

import "github.com/deskpilot/deskpilot/cmd"

func main() {
	cmd.Execute()
}
