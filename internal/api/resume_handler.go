package api

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/resume"
	"resume-builder/internal/storage"

	"github.com/google/uuid"
)

// UploadResumeHandler handles resume file uploads and extraction
// @Summary Upload and parse a resume
// @Description Upload a resume file (PDF/DOCX/TXT), extract a structured resume record and store it
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF, DOCX or TXT)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resume/upload [post]
func (a *API) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext != ".pdf" && ext != ".docx" && ext != ".doc" && ext != ".txt" {
		http.Error(w, "invalid file type (supported: PDF, DOCX, TXT)", http.StatusBadRequest)
		return
	}

	doc, err := a.parser.ParseFile(header.Filename, file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse resume file: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Resume decoded: %s (%d bytes text)", doc.Filename, len(doc.Text))

	// The engine is total: any decoded text yields a full record.
	rec := resume.Extract(doc.Text)

	data, err := json.Marshal(rec)
	if err != nil {
		http.Error(w, "failed to encode resume", http.StatusInternalServerError)
		return
	}

	resumeID := uuid.New().String()
	err = a.db.SaveResume(r.Context(), &storage.ResumeRecord{
		ID:         resumeID,
		Filename:   doc.Filename,
		FileType:   doc.FileType,
		FileSize:   doc.FileSize,
		SourceText: doc.Text,
		Data:       data,
	})
	if err != nil {
		// Persistence is best-effort: the caller still gets the extraction.
		log.Printf("Failed to save resume %s: %v", resumeID, err)
		resumeID = ""
	} else {
		log.Printf("Resume saved with ID: %s", resumeID)
	}

	response := map[string]interface{}{
		"resume_id":          resumeID,
		"filename":           doc.Filename,
		"file_type":          doc.FileType,
		"file_size":          doc.FileSize,
		"text_length":        len(doc.Text),
		"processing_time_ms": time.Since(startTime).Milliseconds(),
		"resume":             rec,
	}
	writeJSON(w, http.StatusOK, response)
}

// GetResumeHandler returns one stored resume
// @Summary Get a stored resume
// @Description Fetch a previously extracted resume record by ID
// @Tags resume
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} resume.Resume
// @Failure 404 {object} map[string]string
// @Router /resume/{id} [get]
func (a *API) GetResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/resume/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "invalid resume id", http.StatusBadRequest)
		return
	}

	rec, err := a.db.GetResume(r.Context(), id)
	if err == sql.ErrNoRows {
		http.Error(w, "resume not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to load resume %s: %v", id, err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rec.Data)
}

// ListResumesHandler lists stored resumes
// @Summary List stored resumes
// @Description List metadata of stored resume records, newest first
// @Tags resume
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /resumes [get]
func (a *API) ListResumesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	infos, err := a.db.ListResumes(r.Context(), 50)
	if err != nil {
		log.Printf("Failed to list resumes: %v", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if infos == nil {
		infos = []*storage.ResumeInfo{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":   len(infos),
		"resumes": infos,
	})
}
