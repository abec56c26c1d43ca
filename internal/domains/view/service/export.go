package service

import (
	"github.com/xuri/excelize/v2"

	"songblog-backend/internal/domains/view/model"
)

// ArchiveSheet - tên sheet trong file export
const ArchiveSheet = "Archive"

func buildArchiveWorkbook(items []model.ArchiveItem) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename default sheet
	if err := f.SetSheetName("Sheet1", ArchiveSheet); err != nil {
		return nil, err
	}

	// Row 1: Header
	headers := []string{"ID", "Title", "Author", "Date"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(ArchiveSheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		_ = f.SetCellStyle(ArchiveSheet, "A1", "D1", headerStyle)
	}

	// Data rows, bắt đầu từ row 2
	for i, item := range items {
		row := []interface{}{item.ID, item.Title, item.Author, item.CreatedAt}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ArchiveSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(ArchiveSheet, "B", "B", 48)
	_ = f.SetColWidth(ArchiveSheet, "C", "D", 16)

	return f, nil
}
