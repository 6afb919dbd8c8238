package preview

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
)

// Handler serves the preview image over HTTP with content type image/png.
type Handler struct {
	renderer *Renderer
	logger   *log.Logger
}

// NewHandler creates an HTTP handler backed by the given renderer.
func NewHandler(renderer *Renderer, logger *log.Logger) *Handler {
	return &Handler{renderer: renderer, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	img, err := h.renderer.Render()
	if err != nil {
		h.logger.Error("preview render failed", "error", err)
		http.Error(w, "preview unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if req.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(img); err != nil {
		h.logger.Warn("preview write failed", "error", err)
	}
}
