package main

import (
	"os"

	"github.com/trknhr/pursuit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
