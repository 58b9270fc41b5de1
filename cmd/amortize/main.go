package main

import (
	"os"

	"loan-amortizer/cmd/amortize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
