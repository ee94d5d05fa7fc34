package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"library-catalog/internal/domains/report/model"
)

const (
	SheetBooksByGenre  = "Books by Genre"
	SheetBooksByAuthor = "Books by Author"
)

func (s *reportService) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	sum, err := s.summary(ctx)
	if err != nil {
		return nil, err
	}

	f, err := buildWorkbook(sum)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}

	log.Info().
		Int("genres", len(sum.BooksByGenre)).
		Int("authors", len(sum.BooksByAuthor)).
		Msg("report workbook exported")
	return f, nil
}

func buildWorkbook(sum *model.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename default sheet
	if err := f.SetSheetName("Sheet1", SheetBooksByGenre); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetBooksByAuthor); err != nil {
		_ = f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	sheets := []struct {
		name   string
		header string
		rows   []model.BookCount
	}{
		{SheetBooksByGenre, "Genre", sum.BooksByGenre},
		{SheetBooksByAuthor, "Author", sum.BooksByAuthor},
	}
	for _, sh := range sheets {
		if err := writeCountSheet(f, sh.name, sh.header, sh.rows, headerStyle); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Library catalog report",
		Creator: "library-catalog",
		Created: sum.GeneratedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func writeCountSheet(f *excelize.File, sheet, nameHeader string, rows []model.BookCount, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"ID", nameHeader, "Books"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return err
	}

	// Data rows, bắt đầu từ row 2
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{r.ID, r.Name, r.BookCount}); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "B", "B", 40)
}
