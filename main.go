package main

import (
	"os"

	"streamc/cmd"
)

func main() {
	os.Exit(cmd.Run())
}
