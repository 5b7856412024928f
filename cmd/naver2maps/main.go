// Package main provides the entry point for the naver2maps server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "naver2maps",
	Short: "Naver Map link and address converter",
	Long:  "naver2maps resolves Naver Map share links, nmap:// deep links and Korean addresses into coordinates and exposes them as Google Maps and Apple Maps URLs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
