package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chandhuDev/JobLens/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a filtered view to an Excel workbook",
	RunE:  runExport,
}

var (
	exportFilters criteriaFlags
	exportOutput  string
	exportLimit   int
)

func init() {
	exportFilters.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "joblens.xlsx", "Path to the output .xlsx file")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 10000, "Maximum number of job rows")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	p, _, err := buildSnapshot(cmd.Context())
	if err != nil {
		return err
	}
	defer p.Close()

	c := exportFilters.criteria()
	c.Limit = exportLimit

	var wb report.Workbook
	if wb.Jobs, err = p.Query.RawListing(c); err != nil {
		return err
	}
	if wb.Companies, err = p.Query.TopCompanies(c); err != nil {
		return err
	}
	if wb.Skills, err = p.Query.TopSkills(c); err != nil {
		return err
	}
	if wb.Salary, err = p.Query.SalaryByExperience(c); err != nil {
		return err
	}

	if err := report.WriteXLSX(exportOutput, wb); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d jobs to %s\n", len(wb.Jobs), exportOutput)
	return nil
}
