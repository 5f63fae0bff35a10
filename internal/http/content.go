package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/document"
)

type setFieldPayload struct {
	Page     string `json:"page"`
	Section  string `json:"section"`
	Field    string `json:"field"`
	Value    any    `json:"value"`
	Language string `json:"language,omitempty"`
}

type bulkReplacePayload struct {
	Content  document.Document `json:"content"`
	Revision int64             `json:"revision"`
}

func (api *API) registerContentRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "content")
	mux.HandleFunc("GET "+root, api.handleContentGet)
	mux.HandleFunc("POST "+root, api.handleContentSetField)
	mux.HandleFunc("POST "+root+"/bulk", api.handleContentBulkReplace)
}

// handleContentGet serves the whole document. First contact with an empty
// store bootstraps the default document, so the site always has something to
// render.
func (api *API) handleContentGet(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	view, err := api.content.GetDocument(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (api *API) handleContentSetField(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	var payload setFieldPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	view, err := api.content.SetField(r.Context(), content.SetFieldRequest{
		Page:     payload.Page,
		Section:  payload.Section,
		Field:    payload.Field,
		Value:    payload.Value,
		Language: payload.Language,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (api *API) handleContentBulkReplace(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	var payload bulkReplacePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	view, err := api.content.BulkReplace(r.Context(), content.BulkReplaceRequest{
		Document:     payload.Content,
		BaseRevision: payload.Revision,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
