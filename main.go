package main

import "github.com/itsmostafa/rpncalc/cmd"

func main() {
	cmd.Execute()
}
