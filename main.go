package main

import "github.com/chazu/cueform/cmd"

func main() {
	cmd.Execute()
}
