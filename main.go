package main

import "github.com/clinterp/clinterp/cmd"

func main() {
	cmd.Execute()
}
