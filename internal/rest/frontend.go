package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves the static frontend bundle, falling back to the
// index file for client-side routes.
type FrontendHandler struct {
	root  string
	index string
}

func NewFrontendHandler(root, index string) *FrontendHandler {
	return &FrontendHandler{root: root, index: index}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.root, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.root, h.index))
		return
	}
	http.FileServer(http.Dir(h.root)).ServeHTTP(w, r)
}
