package enhance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceRemoteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/ai-enhance", r.URL.Path)

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "summary", req.Section)

		json.NewEncoder(w).Encode(Response{
			EnhancedContent: "remote rewrite",
			Suggestions:     []string{"remote tip"},
		})
	}))
	defer srv.Close()

	svc := NewService(srv.URL, 5*time.Second)
	resp := svc.Enhance(context.Background(), Request{Section: "summary", Content: "old text"})

	assert.Equal(t, "remote rewrite", resp.EnhancedContent)
	assert.Equal(t, []string{"remote tip"}, resp.Suggestions)
}

func TestEnhanceFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService(srv.URL, 5*time.Second)
	resp := svc.Enhance(context.Background(), Request{Section: "summary", Content: "old text"})

	assert.Equal(t, cannedEnhancements["summary"], resp)
}

func TestEnhanceFallsBackOnTransportError(t *testing.T) {
	// port nobody is listening on
	svc := NewService("http://127.0.0.1:1", 500*time.Millisecond)
	resp := svc.Enhance(context.Background(), Request{Section: "experience", Content: "old text"})

	assert.Equal(t, cannedEnhancements["experience"], resp)
}

func TestEnhanceFallsBackOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	svc := NewService(srv.URL, 5*time.Second)
	resp := svc.Enhance(context.Background(), Request{Section: "education", Content: "old text"})

	assert.Equal(t, cannedEnhancements["education"], resp)
}

func TestEnhanceUnconfiguredUsesLocal(t *testing.T) {
	svc := NewService("", time.Second)

	resp := svc.Enhance(context.Background(), Request{Section: "Summary", Content: "x"})
	assert.Equal(t, cannedEnhancements["summary"], resp, "section lookup is case-insensitive")

	generic := svc.Enhance(context.Background(), Request{Section: "hobbies", Content: "chess"})
	assert.Equal(t, "Enhanced: chess", generic.EnhancedContent)
	assert.NotEmpty(t, generic.Suggestions)
}
