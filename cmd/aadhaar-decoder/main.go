package main

import (
	"os"

	"aadhaarqr/cmd/aadhaar-decoder/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
