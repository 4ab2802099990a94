package note

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingvictorvector/portfolio-note-generator/internal/common"
	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
	"github.com/kingvictorvector/portfolio-note-generator/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := common.NewSilentLogger()
	store, err := storage.NewFileStore(logger, &common.StorageConfig{Path: t.TempDir()})
	require.NoError(t, err)
	return NewService(store, logger)
}

func TestParseManualEntry(t *testing.T) {
	svc := newTestService(t)

	record := svc.ParseManualEntry(context.Background(), models.ParseRequest{
		ClientName: "ALICE EXAMPLE",
		TrailingYearData: "Time Period: 1/1/2024 to 12/31/2024\n" +
			"Your Portfolio 12.34 5.67 1,234,567",
		YTDData:             "YTD 3.21 2.10 1,234,567",
		AssetAllocationData: "US Stock 50\nNon US Stock 20\nCash 10\nBond 15\nOther 5",
	})

	assert.Equal(t, "ALICE EXAMPLE", record.ClientName)
	assert.Equal(t, "1/1/2024 to 12/31/2024", record.TimePeriod)
	assert.Equal(t, "12.34", record.TrailingYear.TimeWeightedReturn)
	assert.Equal(t, "5.67", record.TrailingYear.BenchmarkReturn)
	assert.Equal(t, "3.21", record.YTD.TimeWeightedReturn)
	assert.Equal(t, "2.10", record.YTD.BenchmarkReturn)
	assert.Equal(t, float64(1234567), record.TotalPortfolioValue)
	assert.Len(t, record.AssetAllocation, 5)
}

func TestParseManualEntry_SparseInput(t *testing.T) {
	svc := newTestService(t)

	record := svc.ParseManualEntry(context.Background(), models.ParseRequest{
		ClientName:       "BOB",
		TrailingYearData: "only 2 numbers: 1 2",
	})

	assert.Equal(t, "", record.TrailingYear.TimeWeightedReturn)
	assert.Equal(t, "", record.TimePeriod)
	assert.Empty(t, record.AssetAllocation)
	assert.Equal(t, float64(1000000), record.TotalPortfolioValue)
}

func TestParseOCRText(t *testing.T) {
	svc := newTestService(t)

	text := "Prepared for: ALICE EXAMPLE\n" +
		"Time Period: 1/1/2024 t0 12/31/2024\n" +
		"US Stock 6540\nNon US Stock 2010\nSch 08\nBond 1075\nOther 375\n"

	record := svc.ParseOCRText(context.Background(), text)

	assert.Equal(t, "ALICE EXAMPLE", record.ClientName)
	assert.Equal(t, "1/1/2024 t0 12/31/2024", record.TimePeriod)
	assert.Equal(t, "65.40", record.AssetAllocation[models.AssetUSStock])
	assert.Equal(t, "0.8", record.AssetAllocation[models.AssetCash])

	// OCR text carries no performance table; the numbers in the asset
	// rows must never be read as performance figures or as the
	// portfolio value.
	assert.Equal(t, "", record.TrailingYear.TimeWeightedReturn)
	assert.Equal(t, "", record.TrailingYear.BenchmarkReturn)
	assert.Equal(t, "", record.YTD.TimeWeightedReturn)
	assert.Equal(t, float64(1000000), record.TotalPortfolioValue)
}

func TestGenerateNote_DefaultTemplate(t *testing.T) {
	svc := newTestService(t)

	record := models.StructuredRecord{
		ClientName: "ALICE EXAMPLE",
		TrailingYear: models.PerformanceBlock{
			TimePeriod:         "1/1/2024 to 12/31/2024",
			TimeWeightedReturn: "12.34",
		},
		AssetAllocation: map[string]string{
			models.AssetUSStock: "50",
		},
		TotalPortfolioValue: 1000000,
	}

	note := svc.GenerateNote(context.Background(), record, "")

	assert.Contains(t, note, "Portfolio review for ALICE EXAMPLE")
	assert.Contains(t, note, "US Stock: 50%")
	assert.Contains(t, note, "Time Weighted Return: 12.34%")
}

func TestGenerateNote_QuickTemplate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	record := models.StructuredRecord{ClientName: "BOB", TotalPortfolioValue: 1000000}

	note := svc.GenerateNote(ctx, record, "performance")
	assert.Contains(t, note, "PERFORMANCE SUMMARY - BOB")
}
