package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/chandhuDev/JobLens/internal/report"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a snapshot and print its build report",
	RunE:  runBuild,
}

var buildJSON bool

func init() {
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "Print the build report as JSON")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	p, snap, err := buildSnapshot(cmd.Context())
	if err != nil {
		return err
	}
	defer p.Close()

	if buildJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	report.RenderBuild(os.Stdout, summary(snap))
	return nil
}
