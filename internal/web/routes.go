package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rook-computer/clockface/internal/display"
	"github.com/rook-computer/clockface/internal/state"
)

// FrameSource encodes the most recent frame.
type FrameSource interface {
	WritePNG(w io.Writer) error
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type statusResponse struct {
	Phase     string    `json:"phase"`
	Frames    uint64    `json:"frames"`
	Failures  uint64    `json:"failures"`
	LastFrame time.Time `json:"lastFrame"`
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	Second    int       `json:"second"`
	Label     string    `json:"label"`
	Error     string    `json:"error,omitempty"`
}

// NewMux serves:
//   - GET /api/v1/status  render loop status as JSON
//   - GET /frame.png      the latest frame
//   - GET /healthz
func NewMux(store *state.Store, frames FrameSource) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, store) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, frames) })
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	return mux
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	return false
}

func handleStatus(w http.ResponseWriter, r *http.Request, store *state.Store) {
	if !allowRead(w, r) {
		return
	}
	if store == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "no_store", "status store not configured")
		return
	}
	snap := store.Snapshot()
	writeJSON(w, http.StatusOK, statusResponse{
		Phase:     snap.Phase.String(),
		Frames:    snap.Frames,
		Failures:  snap.Failures,
		LastFrame: snap.Last.At,
		Hour:      snap.Last.Hour,
		Minute:    snap.Last.Minute,
		Second:    snap.Last.Second,
		Label:     snap.Last.Label,
		Error:     snap.Err,
	})
}

func handleFrame(w http.ResponseWriter, r *http.Request, frames FrameSource) {
	if !allowRead(w, r) {
		return
	}
	if frames == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "no_frames", "frame source not configured")
		return
	}
	// Encode first so a failure can still be reported as JSON.
	var buf bytes.Buffer
	if err := frames.WritePNG(&buf); err != nil {
		if errors.Is(err, display.ErrNoFrame) {
			writeAPIError(w, http.StatusServiceUnavailable, "no_frame", "no frame rendered yet")
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
