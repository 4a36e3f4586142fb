package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/chandhuDev/JobLens/internal/classifier"
	"github.com/chandhuDev/JobLens/internal/config"
	"github.com/chandhuDev/JobLens/internal/service"
)

var rolemapCmd = &cobra.Command{
	Use:   "rolemap",
	Short: "Ask Claude to categorise titles the classifier left as Other",
	Long:  "Builds a snapshot, collects the raw titles classified as Other, sends them to Claude in batches and merges the valid answers into the role map file.",
	RunE:  runRoleMap,
}

var (
	rolemapBatch   int
	rolemapWorkers int
	rolemapDryRun  bool
)

func init() {
	rolemapCmd.Flags().IntVar(&rolemapBatch, "batch", 50, "Titles per request")
	rolemapCmd.Flags().IntVar(&rolemapWorkers, "workers", 4, "Concurrent requests")
	rolemapCmd.Flags().BoolVar(&rolemapDryRun, "dry-run", false, "Print the answers without writing the role map file")
	rootCmd.AddCommand(rolemapCmd)
}

func runRoleMap(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.AnthropicAPIKey == "" {
		return errors.New("ANTHROPIC_API_KEY is required")
	}
	if cfg.RoleMapFile == "" {
		return errors.New("ROLE_MAP_FILE is required")
	}

	p, snap, err := buildSnapshot(cmd.Context())
	if err != nil {
		return err
	}
	defer p.Close()

	titles := service.UnclassifiedTitles(snap)

	gen := service.NewRoleMapGenerator(service.NewAnthropicCompleter(cfg.AnthropicAPIKey), p.Classifier.Taxonomy())
	gen.BatchSize = rolemapBatch
	gen.Workers = rolemapWorkers

	res, err := gen.Generate(cmd.Context(), titles)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d titles, %d mapped, %d rejected, %d/%d batches failed\n",
		len(titles), len(res.Mapping), res.Rejected, res.FailedBatches, res.Batches)

	if rolemapDryRun {
		for title, category := range res.Mapping {
			fmt.Fprintf(out, "%s\t%s\n", title, category)
		}
		return nil
	}

	existing, err := classifier.LoadRoleMap(cfg.RoleMapFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	merged := classifier.RoleMap{}
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range res.Mapping {
		merged[k] = v
	}

	if err := classifier.SaveRoleMap(cfg.RoleMapFile, merged); err != nil {
		return fmt.Errorf("failed to save role map: %w", err)
	}
	fmt.Fprintf(out, "Role map %s now has %d entries\n", cfg.RoleMapFile, len(merged))
	return nil
}
