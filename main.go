package main

import "github.com/hestjs/hestjs-website/cmd"

func main() {
	cmd.Execute()
}
