package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/procboard/procboard/internal/collector"
	"github.com/procboard/procboard/internal/remote"
	"github.com/procboard/procboard/internal/render"
)

// Handler serves the status page. Every GET path produces the same full
// report; HEAD returns the headers only.
type Handler struct {
	collector *collector.Collector
	runner    remote.Runner
	timeout   time.Duration
}

// NewHandler builds the report handler. runner may be nil when no remote
// host is configured.
func NewHandler(c *collector.Collector, runner remote.Runner, timeout time.Duration) *Handler {
	return &Handler{collector: c, runner: runner, timeout: timeout}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// fall through to the full pipeline
	case http.MethodHead:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		return
	default:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reportID := uuid.NewString()
	start := time.Now()

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	rep := h.collector.Collect()
	for _, section := range rep.Errors {
		log.Printf("report %s: collect %s", reportID, section)
	}

	rem := remote.Fetch(ctx, h.runner)

	page, err := render.Page(rep, rem, reportID)
	if err != nil {
		log.Printf("report %s: %v", reportID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)

	log.Printf("report %s: %s %s from %s in %s", reportID, r.Method, r.URL.Path, r.RemoteAddr, time.Since(start).Round(time.Millisecond))
}
