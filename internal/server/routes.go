package server

import "net/http"

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Parsing and note generation
	mux.HandleFunc("/api/notes/parse", s.handleNoteParse)
	mux.HandleFunc("/api/notes/ocr", s.handleNoteOCR)
	mux.HandleFunc("/api/notes/generate", s.handleNoteGenerate)
	mux.HandleFunc("/api/upload", s.handleUpload)

	// Templates
	mux.HandleFunc("/api/templates/active", s.handleActiveTemplate)
	mux.HandleFunc("/api/templates/quick/", s.handleQuickTemplateByKey)
	mux.HandleFunc("/api/templates/quick", s.handleQuickTemplates)
	mux.HandleFunc("/api/templates/variables", s.handleTemplateVariables)
}
