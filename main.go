package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tasnim.dev/s3cadence/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "s3cadence",
		Short: "Report upload cadence for S3 prefixes",
	}

	rootCmd.AddCommand(cmd.NewReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
