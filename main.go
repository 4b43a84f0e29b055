package main

import (
	"os"

	"github.com/uyouii/natural-breaks-csv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
