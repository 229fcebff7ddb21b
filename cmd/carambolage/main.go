package main

import (
	"os"

	"github.com/ThatOtherAndrew/Carambolage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
