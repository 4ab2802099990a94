package server

import (
	"errors"
	"net/http"

	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
	"github.com/kingvictorvector/portfolio-note-generator/internal/storage"
	"github.com/kingvictorvector/portfolio-note-generator/internal/template"
)

// handleActiveTemplate handles GET and PUT /api/templates/active.
func (s *Server) handleActiveTemplate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		content := s.app.Store.LoadActiveTemplate(r.Context())
		WriteJSON(w, http.StatusOK, map[string]string{"content": content})

	case http.MethodPut:
		var req models.SaveTemplateRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		if err := s.app.Store.SaveActiveTemplate(r.Context(), req.Content); err != nil {
			writeStoreError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "saved"})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut)
	}
}

// handleQuickTemplates handles GET and POST /api/templates/quick.
func (s *Server) handleQuickTemplates(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, s.app.Store.LoadQuickTemplates(r.Context()))

	case http.MethodPost:
		var req models.SaveQuickTemplateRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		key, err := s.app.Store.SaveQuickTemplate(r.Context(), req.Key, req.Name, req.Content)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"key": key})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleQuickTemplateByKey handles DELETE /api/templates/quick/{key}.
func (s *Server) handleQuickTemplateByKey(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	key := PathParam(r, "/api/templates/quick/", "")
	if key == "" {
		WriteError(w, http.StatusBadRequest, "template key is required in path")
		return
	}

	if err := s.app.Store.DeleteQuickTemplate(r.Context(), key); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleTemplateVariables handles GET /api/templates/variables.
func (s *Server) handleTemplateVariables(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, template.Variables())
}

// writeStoreError maps template store errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrEmptyTemplate), errors.Is(err, storage.ErrEmptyName):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrTemplateNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
