package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chandhuDev/JobLens/internal/models"
)

// Workbook holds the sheets of an export.
type Workbook struct {
	Jobs      []models.ListingRow
	Companies []models.CompanyCount
	Skills    []models.SkillCount
	Salary    []models.SalaryPoint
}

const (
	SheetJobs      = "Jobs"
	SheetCompanies = "Companies"
	SheetSkills    = "Skills"
	SheetSalary    = "Salary"
)

// WriteXLSX saves wb to path with one sheet per table.
func WriteXLSX(path string, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetJobs); err != nil {
		return err
	}
	for _, name := range []string{SheetCompanies, SheetSkills, SheetSalary} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	jobs := make([][]any, 0, len(wb.Jobs))
	for _, r := range wb.Jobs {
		jobs = append(jobs, []any{
			r.JobID, r.JobRole, r.City, r.Country, r.MinExperience,
			r.ParsedSalary, r.LocationType, r.JobType, r.ApplyURL,
		})
	}
	if err := writeSheet(f, SheetJobs, []string{
		"job_id", "job_role", "city", "country", "min_experience",
		"parsed_salary", "location_type", "job_type", "apply_url",
	}, jobs); err != nil {
		return err
	}

	companies := make([][]any, 0, len(wb.Companies))
	for _, r := range wb.Companies {
		companies = append(companies, []any{r.Company, r.Count})
	}
	if err := writeSheet(f, SheetCompanies, []string{"company", "count"}, companies); err != nil {
		return err
	}

	skills := make([][]any, 0, len(wb.Skills))
	for _, r := range wb.Skills {
		skills = append(skills, []any{r.Skill, r.Count})
	}
	if err := writeSheet(f, SheetSkills, []string{"skill", "count"}, skills); err != nil {
		return err
	}

	salary := make([][]any, 0, len(wb.Salary))
	for _, r := range wb.Salary {
		salary = append(salary, []any{r.City, r.Years, r.AvgSalary, r.JobCount})
	}
	if err := writeSheet(f, SheetSalary, []string{"city", "years", "avg_salary", "job_count"}, salary); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
