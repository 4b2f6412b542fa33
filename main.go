package main

import (
	"github.com/joho/godotenv"

	"github.com/dvaughn/outreach/cmd"
)

// version will be set by goreleaser during build
var version = "dev"

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	// Set the version from build-time variable
	cmd.SetVersion(version)

	// Execute the root command
	cmd.Execute()
}
