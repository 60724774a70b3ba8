// internal/app/features/reports/export.go
package reports

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/takafulhq/takaful/internal/domain/models"
)

var beneficiaryHeaders = []string{
	"Name", "National ID", "Phone", "Region", "Branch",
	"Type", "Status", "Sponsorship", "Birth Date", "Education",
}

// ExportBeneficiaries writes the given (already scoped and filtered)
// beneficiary list as a spreadsheet. Regions and branches supply display
// names; unresolvable references fall back to the raw id so exported rows
// never silently lose data.
func ExportBeneficiaries(w io.Writer, beneficiaries []models.Beneficiary, regions []models.Region, branches []models.Branch) error {
	regionNames := make(map[string]string, len(regions))
	for _, r := range regions {
		regionNames[r.ID] = r.Name
	}
	branchNames := make(map[string]string, len(branches))
	for _, b := range branches {
		branchNames[b.ID] = b.Name
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Beneficiaries"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for col, header := range beneficiaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for row, b := range beneficiaries {
		region := regionNames[b.RegionID]
		if region == "" {
			region = b.RegionID
		}
		branch := branchNames[b.BranchID]
		if branch == "" {
			branch = b.BranchID
		}
		values := []any{
			b.Name, b.NationalID, b.Phone, region, branch,
			models.Label(b.Type), models.Label(b.Status), models.Label(b.SponsorshipStatus),
			b.BirthDate.Format("2006-01-02"), b.EducationLevel,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ExportSummary writes a report snapshot as a two-column spreadsheet of
// metric and value, with a percentage column for the breakdowns.
func ExportSummary(w io.Writer, snap Snapshot, now time.Time) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	writeRow := func(metric string, count int) error {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), metric); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), count); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row),
			fmt.Sprintf("%.1f%%", Percent(count, snap.Total))); err != nil {
			return err
		}
		row++
		return nil
	}

	if err := f.SetCellValue(sheet, "A1", "Generated"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", now.Format(time.RFC3339)); err != nil {
		return err
	}
	row = 2
	if err := writeRow("Total", snap.Total); err != nil {
		return err
	}
	for _, section := range []map[string]int{
		snap.ByType, snap.ByStatus, snap.BySponsorship, snap.ByAgeBucket, snap.ByBranchName,
	} {
		metrics := make([]string, 0, len(section))
		for metric := range section {
			metrics = append(metrics, metric)
		}
		sort.Strings(metrics)
		for _, metric := range metrics {
			if err := writeRow(models.Label(metric), section[metric]); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
