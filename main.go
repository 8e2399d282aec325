package main

import "github.com/gaurav-prasanna/wp2plus/cmd"

func main() {
	cmd.Execute()
}
