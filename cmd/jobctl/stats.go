package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chandhuDev/JobLens/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print KPIs, top companies and top skills for a filtered view",
	RunE:  runStats,
}

var statsFilters criteriaFlags

func init() {
	statsFilters.register(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	p, _, err := buildSnapshot(cmd.Context())
	if err != nil {
		return err
	}
	defer p.Close()

	c := statsFilters.criteria()

	kpis, err := p.Query.KPIs(c)
	if err != nil {
		return err
	}
	companies, err := p.Query.TopCompanies(c)
	if err != nil {
		return err
	}
	skills, err := p.Query.TopSkills(c)
	if err != nil {
		return err
	}

	report.RenderKPIs(os.Stdout, kpis)
	report.RenderCompanies(os.Stdout, companies)
	report.RenderSkills(os.Stdout, skills)
	return nil
}
