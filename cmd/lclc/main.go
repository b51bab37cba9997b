package main

import (
	"os"

	"github.com/Azzajazz/lcl/cmd/lclc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
