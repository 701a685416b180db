package main

import (
	"bookfinder/internal/command"
)

// Set by the release build
var version = "dev"

func main() {
	command.Main("bookfinder", version)
}
