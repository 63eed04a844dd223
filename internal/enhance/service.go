package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	httpclient "resume-builder/pkg/http"
)

// Request asks for one resume section's content to be improved.
type Request struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

// Response carries the rewritten content plus editorial suggestions.
type Response struct {
	EnhancedContent string   `json:"enhanced_content"`
	Suggestions     []string `json:"suggestions"`
}

// Service calls the remote content-enhancement endpoint. The remote call is
// the only fallible network operation around the extraction core; callers
// never see its failures because every error path degrades to the canned
// local response for the section.
type Service struct {
	baseURL string
	client  *httpclient.Client
}

func NewService(baseURL string, timeout time.Duration) *Service {
	return &Service{
		baseURL: baseURL,
		client:  httpclient.NewClient(timeout),
	}
}

// Enhance posts {section, content} to the enhancement endpoint and decodes
// {enhanced_content, suggestions}. With no endpoint configured, or on any
// transport, status or decode failure, it returns the local fallback.
func (s *Service) Enhance(ctx context.Context, req Request) Response {
	if s.baseURL == "" {
		return localEnhancement(req)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return localEnhancement(req)
	}

	resp, err := s.client.PostContext(ctx, s.baseURL+"/ai-enhance", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("enhance request failed, using local fallback: %v", err)
		return localEnhancement(req)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("enhance endpoint returned %d, using local fallback", resp.StatusCode)
		return localEnhancement(req)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("enhance response decode failed, using local fallback: %v", err)
		return localEnhancement(req)
	}
	return out
}
