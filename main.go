package main

import (
	"os"

	"github.com/benroose/ansible-docker-machine-inventory-plugin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
