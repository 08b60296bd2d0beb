package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ynaht/ynaht/internal/blobstore"
)

func newTestRouter() (*mux.Router, *blobstore.MemoryStore) {
	store := blobstore.NewMemoryStore()
	handler := NewDataHandler(store, zap.NewNop())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func TestGetDataRequiresUserHeader(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter()
	req := httptest.NewRequest("GET", "/data", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["error"] != "Missing X-User-Id header" {
		t.Errorf("Unexpected error message %q", body["error"])
	}
}

func TestGetDataReturnsNullWhenAbsent(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter()
	req := httptest.NewRequest("GET", "/data", nil)
	req.Header.Set(UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var body struct {
		Data         json.RawMessage `json:"data"`
		LastSyncedAt string          `json:"lastSyncedAt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if string(body.Data) != "null" {
		t.Errorf("Expected null data, got %s", body.Data)
	}
	if _, err := time.Parse(time.RFC3339, body.LastSyncedAt); err != nil {
		t.Errorf("Expected RFC3339 lastSyncedAt, got %q", body.LastSyncedAt)
	}
}

func TestSaveDataValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userID    string
		body      string
		wantCode  int
		wantError string
	}{
		{
			name:      "missing header",
			body:      `{"data":{}}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Missing X-User-Id header",
		},
		{
			name:      "malformed JSON",
			userID:    "user-1",
			body:      `{not json`,
			wantCode:  http.StatusBadRequest,
			wantError: "Invalid request body",
		},
		{
			name:      "missing data field",
			userID:    "user-1",
			body:      `{}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Missing data in request body",
		},
		{
			name:      "null data",
			userID:    "user-1",
			body:      `{"data":null}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Missing data in request body",
		},
		{
			name:      "non-object data",
			userID:    "user-1",
			body:      `{"data":[1,2,3]}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Data must be a JSON object",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, _ := newTestRouter()
			req := httptest.NewRequest("POST", "/data", strings.NewReader(tt.body))
			if tt.userID != "" {
				req.Header.Set(UserIDHeader, tt.userID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to decode body: %v", err)
			}
			if body["error"] != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, body["error"])
			}
		})
	}
}

func TestSaveDataRoundTripInjectsMeta(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter()

	post := httptest.NewRequest("POST", "/data", strings.NewReader(`{"data":{"daySessions":{},"goals":[]}}`))
	post.Header.Set(UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, post)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var saved struct {
		Success      bool   `json:"success"`
		LastSyncedAt string `json:"lastSyncedAt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("Failed to decode save response: %v", err)
	}
	if !saved.Success {
		t.Error("Expected success true")
	}

	get := httptest.NewRequest("GET", "/data", nil)
	get.Header.Set(UserIDHeader, "user-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, get)

	var fetched struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("Failed to decode get response: %v", err)
	}
	metaRaw, ok := fetched.Data["_meta"]
	if !ok {
		t.Fatal("Expected _meta injected into the stored blob")
	}
	var meta struct {
		LastUpdatedAt time.Time `json:"lastUpdatedAt"`
		UserID        string    `json:"userId"`
	}
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		t.Fatalf("Failed to decode _meta: %v", err)
	}
	if meta.UserID != "user-1" {
		t.Errorf("Expected _meta userId user-1, got %q", meta.UserID)
	}
	if meta.LastUpdatedAt.IsZero() {
		t.Error("Expected _meta lastUpdatedAt stamped")
	}
	if _, ok := fetched.Data["daySessions"]; !ok {
		t.Error("Expected the original blob fields preserved")
	}
}

func TestDataIsolatedPerUser(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter()

	post := httptest.NewRequest("PUT", "/data", strings.NewReader(`{"data":{"goals":[]}}`))
	post.Header.Set(UserIDHeader, "user-1")
	r.ServeHTTP(httptest.NewRecorder(), post)

	get := httptest.NewRequest("GET", "/data", nil)
	get.Header.Set(UserIDHeader, "user-2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, get)

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if string(body.Data) != "null" {
		t.Errorf("Expected null for another user, got %s", body.Data)
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	store := blobstore.NewMemoryStore()
	checker := NewHealthChecker(store)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	checker.HealthCheck(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/healthz?mode=extended", nil)
	w = httptest.NewRecorder()
	checker.HealthCheck(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for extended check, got %d", w.Code)
	}
}
