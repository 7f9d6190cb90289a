package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Secrets such as HF_TOKEN may live in a local .env file.
	_ = godotenv.Load()

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
