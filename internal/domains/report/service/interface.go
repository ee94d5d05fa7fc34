package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"library-catalog/internal/domains/report/model"
)

type ServiceInterface interface {
	BooksByGenre(ctx context.Context) ([]model.BookCount, error)
	BooksByAuthor(ctx context.Context) ([]model.BookCount, error)

	// ExportWorkbook builds an XLSX workbook with one sheet per report.
	// The caller must Close the file.
	ExportWorkbook(ctx context.Context) (*excelize.File, error)
}
