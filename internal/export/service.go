package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/receipts-pipeline/internal/repository"
)

// Service is a tiny façade over the stat repository that produces XLSX
// bytes for exports.
type Service struct {
	statsRepo repository.StatRepository
	logger    *slog.Logger
}

func NewService(statsRepo repository.StatRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{statsRepo: statsRepo, logger: logger}
}

// ExportItemStatsXLSX returns an XLSX workbook (as bytes) with the item
// statistics for one scope.
func (s *Service) ExportItemStatsXLSX(ctx context.Context, scope string) ([]byte, error) {
	start := time.Now()

	stats, err := s.statsRepo.ListByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Item Statistics"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Item",
		"Times Purchased",
		"Total Spend",
		"Min Unit Price",
		"Max Unit Price",
		"Last Purchased",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, st := range stats {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, st.ItemKey)
		write(2, st.Count)
		write(3, fmt.Sprintf("%.2f", st.TotalSpend))
		write(4, fmt.Sprintf("%.2f", st.MinPrice))
		write(5, fmt.Sprintf("%.2f", st.MaxPrice))
		if !st.LastSeen.IsZero() {
			write(6, st.LastSeen.Format("2006-01-02"))
		} else {
			write(6, "")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 36) // item key
	_ = f.SetColWidth(sheet, "B", "B", 16) // count
	_ = f.SetColWidth(sheet, "C", "E", 14) // amounts
	_ = f.SetColWidth(sheet, "F", "F", 16) // date

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"scope", scope,
		"rows", len(stats),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
