package api

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// Index serves the entry file unmodified.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	s.serveFile(w, r, s.entry)
}

// Static serves other assets from the serving directory and answers
// everything else with the JSON not-found body.
func (s *Server) Static(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		respondNotFound(w)
		return
	}
	s.serveFile(w, r, r.URL.Path)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	name = path.Clean("/" + name)
	if hidden(name) {
		respondNotFound(w)
		return
	}

	f, err := s.files.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("open static file", "path", name, "error", err)
		}
		respondNotFound(w)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		respondNotFound(w)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// hidden reports whether any segment of a cleaned path starts with a dot.
func hidden(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
