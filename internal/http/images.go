package http

import (
	"net/http"

	"github.com/alphire-robotics/team-cms/internal/images"
)

func (api *API) registerImageRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("POST "+joinPath(base, "upload"), api.handleUpload)
	root := joinPath(base, "website-images")
	mux.HandleFunc("GET "+root, api.handleWebsiteImagesGet)
	mux.HandleFunc("POST "+root, api.handleWebsiteImagesSet)
}

// handleUpload accepts one multipart file under the "file" field and returns
// the stored key plus a signed URL.
func (api *API) handleUpload(w http.ResponseWriter, r *http.Request) {
	if api.images == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, images.ErrNoFile)
		return
	}
	defer file.Close()

	result, err := api.images.Upload(r.Context(), images.UploadRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (api *API) handleWebsiteImagesGet(w http.ResponseWriter, r *http.Request) {
	if api.images == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	stored, err := api.images.WebsiteImages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": stored})
}

func (api *API) handleWebsiteImagesSet(w http.ResponseWriter, r *http.Request) {
	if api.images == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	var payload struct {
		Images map[string]string `json:"images"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	if err := api.images.SetWebsiteImages(r.Context(), payload.Images); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": payload.Images})
}
