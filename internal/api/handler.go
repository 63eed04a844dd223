package api

import (
	"encoding/json"
	"log"
	"net/http"

	"resume-builder/internal/config"
	"resume-builder/internal/document"
	"resume-builder/internal/enhance"
	"resume-builder/internal/storage"
)

type API struct {
	db       *storage.DB
	parser   *document.Parser
	enhancer *enhance.Service
}

func NewAPI(db *storage.DB, cfg *config.Config) *API {
	return &API{
		db:       db,
		parser:   document.NewParser(cfg.UploadsDir),
		enhancer: enhance.NewService(cfg.EnhanceURL, cfg.EnhanceTimeout),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode JSON response: %v", err)
	}
}

// EnhanceHandler improves one resume section's content
// @Summary Enhance resume content
// @Description Improve a resume section; falls back to a local canned response when the enhancement service is unavailable
// @Tags enhance
// @Accept json
// @Produce json
// @Param request body enhance.Request true "Section and content to enhance"
// @Success 200 {object} enhance.Response
// @Failure 400 {object} map[string]string
// @Router /enhance [post]
func (a *API) EnhanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req enhance.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, a.enhancer.Enhance(r.Context(), req))
}
