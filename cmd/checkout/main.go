package main

import (
	"context"
	"os"
)

// main runs the checkout command line tool.
func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
