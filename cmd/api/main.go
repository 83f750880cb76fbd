package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-collector",
	Short: "Resume Collector HTTP API server",
	Long:  "Resume Collector accepts candidate resumes with metadata, validates them, and keeps them in memory for listing, lookup and deletion.",
}

// @title           Resume Collector API
// @version         1.0
// @description     REST API for uploading resumes and managing candidate metadata.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
