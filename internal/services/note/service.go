// Package note provides the note generation service
package note

import (
	"context"
	"fmt"
	"io"

	"github.com/kingvictorvector/portfolio-note-generator/internal/common"
	"github.com/kingvictorvector/portfolio-note-generator/internal/interfaces"
	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
	"github.com/kingvictorvector/portfolio-note-generator/internal/parser"
	"github.com/kingvictorvector/portfolio-note-generator/internal/template"
)

// Service implements NoteService. It holds no state across calls: every
// operation is a function of its inputs plus at most one store read.
type Service struct {
	store  interfaces.TemplateStore
	logger *common.Logger
}

// NewService creates a new note service
func NewService(store interfaces.TemplateStore, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ParseManualEntry extracts a structured record from the manual-entry
// text blocks. Performance tables are parsed by number position, the
// time period comes from the trailing-year block, and asset labels are
// scanned independently (pasted tables may be out of order).
func (s *Service) ParseManualEntry(ctx context.Context, req models.ParseRequest) models.StructuredRecord {
	record := parser.AssembleRecord(parser.AssembleInput{
		ClientName:          req.ClientName,
		TimePeriod:          parser.ExtractTimePeriod(req.TrailingYearData),
		TrailingYear:        parser.ExtractPerformanceTriple(req.TrailingYearData),
		YTD:                 parser.ExtractPerformanceTriple(req.YTDData),
		AssetAllocation:     parser.ExtractAssetAllocation(req.AssetAllocationData),
		TotalPortfolioValue: req.TotalPortfolioValue,
	})

	s.logger.Debug().
		Str("client", record.ClientName).
		Str("time_period", record.TimePeriod).
		Int("assets", len(record.AssetAllocation)).
		Msg("Parsed manual entry")

	return record
}

// ParseOCRText extracts a structured record from already-produced OCR
// text. OCR extraction tolerates misspelled and merged labels and
// reconstructs decimal points lost during recognition. Position-based
// performance parsing needs an isolated table block, so a whole OCR
// document yields no performance figures; the user fills those in.
func (s *Service) ParseOCRText(ctx context.Context, text string) models.StructuredRecord {
	extracted := parser.ExtractOCRText(text)

	record := parser.AssembleRecord(parser.AssembleInput{
		ClientName:      extracted.ClientName,
		TimePeriod:      extracted.TimePeriod,
		AssetAllocation: extracted.AssetAllocation,
	})

	s.logger.Debug().
		Str("client", record.ClientName).
		Str("time_period", record.TimePeriod).
		Int("assets", len(record.AssetAllocation)).
		Msg("Parsed OCR text")

	return record
}

// ParseDocument extracts plain text from a PDF report and parses it with
// the OCR-tolerant extractors.
func (s *Service) ParseDocument(ctx context.Context, r io.Reader) (models.StructuredRecord, error) {
	text, err := parser.ExtractPDFText(r)
	if err != nil {
		return models.StructuredRecord{}, fmt.Errorf("extract document text: %w", err)
	}
	return s.ParseOCRText(ctx, text), nil
}

// GenerateNote renders the final note for a verified record.
func (s *Service) GenerateNote(ctx context.Context, record models.StructuredRecord, templateID string) string {
	note := template.RenderByID(ctx, record, templateID, s.store)

	s.logger.Info().
		Str("client", record.ClientName).
		Str("template_id", templateID).
		Int("length", len(note)).
		Msg("Generated note")

	return note
}
