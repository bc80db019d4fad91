package main

import "devfolio/cmd"

func main() {
	cmd.Execute()
}
