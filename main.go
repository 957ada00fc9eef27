package main

import "github.com/alde/notewall/cmd"

func main() {
	cmd.Execute()
}
