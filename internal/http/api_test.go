package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alphire-robotics/team-cms/internal/catalog"
	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/images"
	"github.com/alphire-robotics/team-cms/internal/runtimeconfig"
)

const (
	adminToken  = "admin-token"
	memberToken = "member-token"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := runtimeconfig.DefaultConfig()
	cfg.Admin.Emails = []string{"coach@example.com"}

	auth := NewStaticTokenAuthenticator(map[string]string{
		adminToken:  "coach@example.com",
		memberToken: "member@example.com",
	})

	api := NewAPI(
		WithContentService(content.NewService(content.NewMemoryDocumentRepository())),
		WithCatalogService(catalog.NewService(catalog.Repositories{
			Robots:    catalog.NewMemoryRobotRepository(),
			Posts:     catalog.NewMemoryPostRepository(),
			Contacts:  catalog.NewMemoryContactRepository(),
			Downloads: catalog.NewMemoryDownloadRepository(),
		})),
		WithImageService(images.NewService(images.NewMemoryObjectStorage(), images.NewMemoryImageRepository())),
		WithAuthenticator(auth),
		WithAdminChecker(cfg),
	)

	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("Register: %v", err)
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, buf.Bytes()
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("health payload = %v", payload)
	}
}

func TestContentGetBootstrapsDefaultDocument(t *testing.T) {
	server := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/content", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	var payload struct {
		Content  map[string]any `json:"content"`
		Revision int64          `json:"revision"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Revision != 1 {
		t.Fatalf("revision = %d", payload.Revision)
	}
	if _, ok := payload.Content["home"]; !ok {
		t.Fatal("bootstrapped document missing home page")
	}
}

func TestContentWriteRequiresAdmin(t *testing.T) {
	server := newTestServer(t)
	payload := map[string]any{"page": "home", "section": "hero", "field": "title", "value": "x"}

	resp, _ := doRequest(t, http.MethodPost, server.URL+"/api/content", "", payload)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token status = %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, http.MethodPost, server.URL+"/api/content", memberToken, payload)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("member status = %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, http.MethodPost, server.URL+"/api/content", adminToken, payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin status = %d", resp.StatusCode)
	}
}

func TestBulkReplaceStaleRevisionConflicts(t *testing.T) {
	server := newTestServer(t)

	_, body := doRequest(t, http.MethodGet, server.URL+"/api/content", "", nil)
	var view struct {
		Content  map[string]any `json:"content"`
		Revision int64          `json:"revision"`
	}
	if err := json.Unmarshal(body, &view); err != nil {
		t.Fatalf("decode: %v", err)
	}

	save := map[string]any{"content": view.Content, "revision": view.Revision}
	resp, _ := doRequest(t, http.MethodPost, server.URL+"/api/content/bulk", adminToken, save)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first save status = %d", resp.StatusCode)
	}

	// Same base revision again: the first save already advanced it.
	resp, errBody := doRequest(t, http.MethodPost, server.URL+"/api/content/bulk", adminToken, save)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("stale save status = %d, body = %s", resp.StatusCode, errBody)
	}
}

func TestUploadRoundTrip(t *testing.T) {
	server := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "banner.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("png bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/upload", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var result struct {
		FileName string `json:"fileName"`
		URL      string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasSuffix(result.FileName, ".png") {
		t.Fatalf("fileName = %q", result.FileName)
	}
	if result.URL == "" {
		t.Fatal("missing signed url")
	}
}

func TestPostVisibilityDependsOnAdminView(t *testing.T) {
	server := newTestServer(t)

	for _, post := range []map[string]any{
		{"data": map[string]any{"title": "public"}},
		{"data": map[string]any{"title": "draft"}, "visible": false},
	} {
		resp, body := doRequest(t, http.MethodPost, server.URL+"/api/posts", adminToken, post)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create post status = %d, body = %s", resp.StatusCode, body)
		}
	}

	count := func(token string, adminView bool) int {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/api/posts", nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if adminView {
			req.Header.Set("X-Admin-View", "true")
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		defer resp.Body.Close()
		var payload struct {
			Posts []json.RawMessage `json:"posts"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return len(payload.Posts)
	}

	if got := count("", false); got != 1 {
		t.Fatalf("public count = %d", got)
	}
	// Asking for the admin view without admin credentials changes nothing.
	if got := count(memberToken, true); got != 1 {
		t.Fatalf("member admin-view count = %d", got)
	}
	if got := count(adminToken, true); got != 2 {
		t.Fatalf("admin count = %d", got)
	}
}

func TestContactFlow(t *testing.T) {
	server := newTestServer(t)

	resp, body := doRequest(t, http.MethodPost, server.URL+"/api/contact", "", map[string]any{
		"name": "Ana", "message": "olá",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit status = %d, body = %s", resp.StatusCode, body)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp, _ = doRequest(t, http.MethodGet, server.URL+"/api/contacts", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("public contacts status = %d", resp.StatusCode)
	}

	resp, body = doRequest(t, http.MethodGet, server.URL+"/api/contacts", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin contacts status = %d", resp.StatusCode)
	}
	var listed struct {
		Contacts []struct {
			ID   string `json:"id"`
			Read bool   `json:"read"`
		} `json:"contacts"`
	}
	if err := json.Unmarshal(body, &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Contacts) != 1 || listed.Contacts[0].Read {
		t.Fatalf("contacts = %+v", listed.Contacts)
	}

	markURL := fmt.Sprintf("%s/api/contacts/%s/read", server.URL, created.ID)
	resp, body = doRequest(t, http.MethodPatch, markURL, adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mark read status = %d, body = %s", resp.StatusCode, body)
	}

	deleteURL := fmt.Sprintf("%s/api/contacts/%s", server.URL, created.ID)
	resp, _ = doRequest(t, http.MethodDelete, deleteURL, adminToken, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
}

func TestDownloadTrackingAndStats(t *testing.T) {
	server := newTestServer(t)

	for i := 0; i < 2; i++ {
		resp, body := doRequest(t, http.MethodPost, server.URL+"/api/downloads/notebook-2025", "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("track status = %d, body = %s", resp.StatusCode, body)
		}
	}

	resp, body := doRequest(t, http.MethodGet, server.URL+"/api/downloads", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}
	var payload struct {
		Downloads []struct {
			Material string `json:"material"`
			Count    int64  `json:"count"`
		} `json:"downloads"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Downloads) != 1 || payload.Downloads[0].Count != 2 {
		t.Fatalf("downloads = %+v", payload.Downloads)
	}
}

func TestRobotDeleteUnknownReturnsNotFound(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doRequest(t, http.MethodDelete, server.URL+"/api/robots/1b4e28ba-2fa1-11d2-883f-0016d3cca427", adminToken, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
