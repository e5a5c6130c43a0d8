package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alimgiray/gfolio/internal/models"
)

const exportSheet = "Projects"

var exportHeader = []string{"Name", "Description", "Language", "Stars", "Forks", "Updated", "Fork", "Archived", "Repository", "Live"}

// ExportService writes the displayed project list as a spreadsheet.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteXLSX writes one header row and one row per repository, in the
// order given.
func (s *ExportService) WriteXLSX(w io.Writer, repos []models.Repository) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, repo := range repos {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		live, _ := repo.LiveURL()
		updated := ""
		if !repo.PushedAt.IsZero() {
			updated = repo.PushedAt.UTC().Format("2006-01-02")
		}
		row := []interface{}{
			repo.Name,
			repo.Description,
			repo.Language,
			repo.StarCount,
			repo.ForkCount,
			updated,
			repo.IsFork,
			repo.IsArchived,
			repo.HTMLURL,
			live,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "B", 30); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
