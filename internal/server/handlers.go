package server

import (
	"net/http"

	"github.com/kingvictorvector/portfolio-note-generator/internal/common"
	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
)

// handleHealth responds to GET/HEAD /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion responds to GET/HEAD /api/version with version info.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleNoteParse handles POST /api/notes/parse: manual-entry text
// blocks in, structured record out. Extraction misses are not errors;
// missing fields come back empty for the user to fill in.
func (s *Server) handleNoteParse(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.ParseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record := s.app.NoteService.ParseManualEntry(r.Context(), req)
	WriteJSON(w, http.StatusOK, record)
}

// handleNoteOCR handles POST /api/notes/ocr: raw OCR text in,
// structured record out.
func (s *Server) handleNoteOCR(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.OCRParseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		WriteError(w, http.StatusBadRequest, "text is required")
		return
	}

	record := s.app.NoteService.ParseOCRText(r.Context(), req.Text)
	WriteJSON(w, http.StatusOK, record)
}

// handleNoteGenerate handles POST /api/notes/generate: verified record
// in, final note text out.
func (s *Server) handleNoteGenerate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.GenerateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	note := s.app.NoteService.GenerateNote(r.Context(), req.Record, req.TemplateID)
	WriteJSON(w, http.StatusOK, models.GenerateResponse{Note: note})
}

// handleUpload handles POST /api/upload: a multipart PDF report in,
// structured record out. Uploads are rate-limited.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if !s.uploadLimiter.Allow() {
		WriteError(w, http.StatusTooManyRequests, "Too many uploads, retry shortly")
		return
	}

	maxSize := int64(s.app.Config.Upload.MaxSizeMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("pdfFile")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "pdfFile is required")
		return
	}
	defer file.Close()

	record, err := s.app.NoteService.ParseDocument(r.Context(), file)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", header.Filename).Msg("Document parse failed")
		WriteError(w, http.StatusUnprocessableEntity, "Could not extract text from document")
		return
	}

	WriteJSON(w, http.StatusOK, record)
}
