package interfaces

import (
	"context"
	"io"

	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
)

// NoteService turns report text into structured records and renders
// final notes from them.
type NoteService interface {
	// ParseManualEntry extracts a structured record from the text blocks
	// of the manual-entry form.
	ParseManualEntry(ctx context.Context, req models.ParseRequest) models.StructuredRecord

	// ParseOCRText extracts a structured record from already-produced
	// OCR text for a whole report.
	ParseOCRText(ctx context.Context, text string) models.StructuredRecord

	// ParseDocument extracts text from a PDF report and parses it with
	// the OCR-tolerant extractors.
	ParseDocument(ctx context.Context, r io.Reader) (models.StructuredRecord, error)

	// GenerateNote renders the final note for a record. templateID
	// selects a quick template; empty or unknown IDs fall back to the
	// active template.
	GenerateNote(ctx context.Context, record models.StructuredRecord, templateID string) string
}
