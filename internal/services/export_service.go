package services

import (
	"fmt"
	"io"

	"github.com/alimgiray/tzroster/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "People"

type ExportService struct {
	rosterService *RosterService
}

func NewExportService(rosterService *RosterService) *ExportService {
	return &ExportService{
		rosterService: rosterService,
	}
}

// WriteRosterWorkbook writes the roster in display order as an xlsx workbook
func (s *ExportService) WriteRosterWorkbook(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Name", "Zone", "Zone Label", "Current Time"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, person := range s.rosterService.People() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{person.Name, person.Zone, models.ZoneLabel(person.Zone), person.CurrentTime}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "D", 24); err != nil {
		return err
	}

	return f.Write(w)
}
