package main

import "github.com/mj1618/ariatest/cmd"

func main() {
	cmd.Execute()
}
