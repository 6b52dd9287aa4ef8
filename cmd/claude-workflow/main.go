package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/claude-workflow/claude-workflow/internal/cli"
)

var loadDotEnv = godotenv.Load

func main() {
	// Load .env file (ignore error if file doesn't exist). The config layer
	// reads CLAUDE_WORKFLOW_* variables from the environment.
	_ = loadDotEnv()

	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitFailure)
	}
}
