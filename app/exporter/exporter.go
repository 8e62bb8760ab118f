package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"sheetlens/app/session"
)

// Package exporter is the external-writer boundary. The export row matrix is
// handed to excelize row by row; the written file is atomic by excelize's
// contract, so a failed save leaves no partial workbook behind.

// DefaultSheetLabel names the single sheet of an exported workbook when the
// settings do not override it.
const DefaultSheetLabel = "Export"

// exportExt is the suffix appended to user-supplied filenames that lack it.
const exportExt = ".xlsx"

// EnsureSuffix appends the spreadsheet suffix to a filename when missing.
func EnsureSuffix(name string) string {
	if strings.HasSuffix(strings.ToLower(name), exportExt) {
		return name
	}
	return name + exportExt
}

// WriteMatrix writes the header+data matrix into a new single-sheet workbook
// at path. An empty matrix is the caller's error to surface; the writer
// refuses it rather than producing an empty file.
func WriteMatrix(path, sheetLabel string, matrix [][]session.Cell) error {
	if len(matrix) == 0 {
		return fmt.Errorf("nothing to export")
	}
	if sheetLabel == "" {
		sheetLabel = DefaultSheetLabel
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetLabel); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	for i, row := range matrix {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetLabel, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
