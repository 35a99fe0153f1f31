package main

import "github.com/dinesight/dinesight/cmd"

func main() {
	cmd.Execute()
}
