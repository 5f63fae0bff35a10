package http

import (
	"net/http"
	"strings"

	"github.com/alphire-robotics/team-cms/internal/catalog"
	"github.com/google/uuid"
)

type saveRobotPayload struct {
	ID   *uuid.UUID     `json:"id,omitempty"`
	Data map[string]any `json:"data"`
}

type savePostPayload struct {
	ID      *uuid.UUID     `json:"id,omitempty"`
	Data    map[string]any `json:"data"`
	Visible *bool          `json:"visible,omitempty"`
	Order   *int           `json:"order,omitempty"`
}

func (api *API) registerCatalogRoutes(mux *http.ServeMux, base string) {
	robots := joinPath(base, "robots")
	mux.HandleFunc("GET "+robots, api.handleRobotList)
	mux.HandleFunc("POST "+robots, api.handleRobotSave)
	mux.HandleFunc("DELETE "+robots+"/{id}", api.handleRobotDelete)

	posts := joinPath(base, "posts")
	mux.HandleFunc("GET "+posts, api.handlePostList)
	mux.HandleFunc("POST "+posts, api.handlePostSave)
	mux.HandleFunc("DELETE "+posts+"/{id}", api.handlePostDelete)

	mux.HandleFunc("POST "+joinPath(base, "contact"), api.handleContactSubmit)
	contacts := joinPath(base, "contacts")
	mux.HandleFunc("GET "+contacts, api.handleContactList)
	mux.HandleFunc("PATCH "+contacts+"/{id}/read", api.handleContactMarkRead)
	mux.HandleFunc("DELETE "+contacts+"/{id}", api.handleContactDelete)

	downloads := joinPath(base, "downloads")
	mux.HandleFunc("GET "+downloads, api.handleDownloadStats)
	mux.HandleFunc("POST "+downloads+"/{material}", api.handleDownloadTrack)
}

func (api *API) handleRobotList(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	robots, err := api.catalog.ListRobots(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"robots": robots})
}

func (api *API) handleRobotSave(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	var payload saveRobotPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	req := catalog.SaveRobotRequest{Data: payload.Data}
	if payload.ID != nil {
		req.ID = *payload.ID
	}
	saved, err := api.catalog.SaveRobot(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if payload.ID == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, saved)
}

func (api *API) handleRobotDelete(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.catalog.DeleteRobot(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// handlePostList serves visible posts to everyone. An admin asking with the
// X-Admin-View header also sees hidden posts.
func (api *API) handlePostList(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	includeHidden := adminViewRequested(r) && api.isAdminRequest(r)
	posts, err := api.catalog.ListPosts(r.Context(), catalog.ListPostsRequest{IncludeHidden: includeHidden})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (api *API) handlePostSave(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	var payload savePostPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	req := catalog.SavePostRequest{
		Data:    payload.Data,
		Visible: payload.Visible,
		Order:   payload.Order,
	}
	if payload.ID != nil {
		req.ID = *payload.ID
	}
	saved, err := api.catalog.SavePost(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if payload.ID == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, saved)
}

func (api *API) handlePostDelete(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.catalog.DeletePost(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// handleContactSubmit is the one public write: the contact form posts here
// without any token.
func (api *API) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	var payload map[string]any
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	created, err := api.catalog.SubmitContact(r.Context(), catalog.SubmitContactRequest{Data: payload})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (api *API) handleContactList(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	contacts, err := api.catalog.ListContacts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

func (api *API) handleContactMarkRead(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	updated, err := api.catalog.MarkContactRead(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *API) handleContactDelete(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if err := api.catalog.DeleteContact(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// handleDownloadTrack is public: the download buttons on the materials page
// report through it.
func (api *API) handleDownloadTrack(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	material := strings.TrimSpace(r.PathValue("material"))
	stat, err := api.catalog.TrackDownload(r.Context(), material)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stat)
}

func (api *API) handleDownloadStats(w http.ResponseWriter, r *http.Request) {
	if api.catalog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if !api.requireAdmin(w, r) {
		return
	}
	stats, err := api.catalog.DownloadStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"downloads": stats})
}

func adminViewRequested(r *http.Request) bool {
	return parseBoolQuery(r.Header.Get("X-Admin-View"), false)
}

// isAdminRequest checks the bearer token without writing a response, for
// endpoints that merely widen their output for admins.
func (api *API) isAdminRequest(r *http.Request) bool {
	if api.auth == nil || api.admins == nil {
		return false
	}
	token := bearerToken(r)
	if token == "" {
		return false
	}
	email, err := api.auth.EmailForToken(r.Context(), token)
	if err != nil {
		return false
	}
	return api.admins.IsAdminEmail(email)
}
