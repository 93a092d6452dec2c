package main

import "github.com/papapumpkin/ecliptic/cmd"

func main() {
	cmd.Execute()
}
