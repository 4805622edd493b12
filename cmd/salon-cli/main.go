package main

import "github.com/nfrund/salon/cmd/salon-cli/cmd"

func main() {
	cmd.Execute()
}
