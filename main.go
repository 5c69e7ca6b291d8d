package main

import "github.com/mouse-blink/sjavac/cmd"

func main() {
	cmd.Execute()
}
