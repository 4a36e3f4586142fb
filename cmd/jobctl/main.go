// Command jobctl runs the JobLens pipeline once from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chandhuDev/JobLens/internal/config"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/report"
	"github.com/chandhuDev/JobLens/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "jobctl",
	Short: "JobLens operator tool",
	Long:  "jobctl builds JobLens snapshots on demand, prints their statistics, exports them to Excel and maintains the role map.",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cfg := logger.DefaultConfig()
		cfg.File = false
		cfg.Console = true
		if verbose {
			cfg.Level = "debug"
		}
		logger.Init(cfg)
	},
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	_ = config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildSnapshot wires the pipeline from the environment and runs one build.
func buildSnapshot(ctx context.Context) (*service.Pipeline, *service.Snapshot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	p, err := service.NewPipeline(ctx, cfg, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up pipeline: %w", err)
	}

	snap, err := p.Dataset.Refresh(ctx)
	if err != nil {
		p.Close()
		return nil, nil, fmt.Errorf("build failed: %w", err)
	}
	return p, snap, nil
}

func summary(snap *service.Snapshot) report.BuildSummary {
	fb := snap.Report.Fallbacks
	return report.BuildSummary{
		SnapshotID:     snap.ID,
		Origin:         snap.Report.Origin,
		Source:         snap.Report.Source,
		Records:        snap.Report.Records,
		DistinctTitles: snap.Report.DistinctTitles,
		Stages:         snap.Report.Stages,
		Fallbacks: map[string]int{
			"location":    fb.Location,
			"coordinates": fb.Coordinates,
			"salary":      fb.Salary,
			"experience":  fb.Experience,
			"posted_at":   fb.PostedAt,
		},
	}
}

// criteriaFlags are the query filters shared by stats and export.
type criteriaFlags struct {
	countries []string
	role      string
	expMax    float64
	keyword   string
	daysAgo   int
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.countries, "country", nil, "Restrict to these countries (repeatable)")
	cmd.Flags().StringVar(&f.role, "role", "", "Restrict to one role category")
	cmd.Flags().Float64Var(&f.expMax, "exp-max", -1, "Maximum required experience in years (negative means unbounded)")
	cmd.Flags().StringVar(&f.keyword, "keyword", "", "Case-insensitive keyword over title, role and description")
	cmd.Flags().IntVar(&f.daysAgo, "days-ago", 0, "Only postings from the last N days")
}

func (f *criteriaFlags) criteria() models.Criteria {
	c := models.Criteria{
		Countries:      f.countries,
		Role:           f.role,
		Keyword:        f.keyword,
		MinRecencyDays: f.daysAgo,
	}
	if f.expMax >= 0 {
		v := f.expMax
		c.MaxExperience = &v
	}
	return c
}
