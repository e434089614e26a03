package main

import (
	"os"

	"github.com/abhisek/dsagen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
