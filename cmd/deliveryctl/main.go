package main

import (
	"os"

	"github.com/arbadelivery/deliverykit/cmd/deliveryctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
