package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ynaht/ynaht/internal/blobstore"
)

// UserIDHeader carries the opaque client-generated user identifier.
const UserIDHeader = "X-User-Id"

// DataHandler serves the per-user blob endpoint.
type DataHandler struct {
	store  blobstore.Store
	logger *zap.Logger
}

// NewDataHandler creates a new data handler.
func NewDataHandler(store blobstore.Store, logger *zap.Logger) *DataHandler {
	return &DataHandler{store: store, logger: logger}
}

// RegisterRoutes registers the /data routes on the given router.
func (h *DataHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/data", h.GetData).Methods("GET")
	r.HandleFunc("/data", h.SaveData).Methods("POST", "PUT")
}

type saveDataRequest struct {
	Data json.RawMessage `json:"data"`
}

type blobMeta struct {
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	UserID        string    `json:"userId"`
}

// GetData returns the stored blob for the requesting user, or null when
// none exists yet.
func (h *DataHandler) GetData(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(UserIDHeader)
	if userID == "" {
		respondError(w, http.StatusBadRequest, "Missing X-User-Id header")
		return
	}

	data, err := h.store.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("blob_get_failed", zap.String("user_id", userID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if data == nil {
		data = json.RawMessage("null")
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"data":         data,
		"lastSyncedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// SaveData stores the posted blob for the requesting user, stamping it with
// server-side metadata the clients use for last-write-wins reconciliation.
func (h *DataHandler) SaveData(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(UserIDHeader)
	if userID == "" {
		respondError(w, http.StatusBadRequest, "Missing X-User-Id header")
		return
	}

	var req saveDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Data) == 0 || string(req.Data) == "null" {
		respondError(w, http.StatusBadRequest, "Missing data in request body")
		return
	}

	// Merge _meta into the blob without interpreting the rest of it.
	var blob map[string]json.RawMessage
	if err := json.Unmarshal(req.Data, &blob); err != nil {
		respondError(w, http.StatusBadRequest, "Data must be a JSON object")
		return
	}
	meta, err := json.Marshal(blobMeta{
		LastUpdatedAt: time.Now().UTC(),
		UserID:        userID,
	})
	if err != nil {
		h.logger.Error("blob_meta_marshal_failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	blob["_meta"] = meta

	stored, err := json.Marshal(blob)
	if err != nil {
		h.logger.Error("blob_marshal_failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.store.Set(r.Context(), userID, stored); err != nil {
		h.logger.Error("blob_set_failed", zap.String("user_id", userID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"lastSyncedAt": time.Now().UTC().Format(time.RFC3339),
	})
}
