package main

import "simplyctl/cmd"

func main() {
	cmd.Execute()
}
