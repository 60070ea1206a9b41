package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/alexis/glassbudget/internal/clientconfig"
)

// Server holds dependencies for all HTTP handlers.
type Server struct {
	source clientconfig.Source
	files  http.FileSystem
	entry  string
}

// Options configures the router.
type Options struct {
	Dir         string // serving directory for the entry file and static assets
	EntryFile   string // served at "/"
	CORSEnabled bool
}

// NewRouter creates a Chi router with all routes wired.
func NewRouter(src clientconfig.Source, opts Options) *chi.Mux {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.EntryFile == "" {
		opts.EntryFile = "index.html"
	}
	srv := &Server{source: src, files: http.Dir(opts.Dir), entry: opts.EntryFile}

	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	if opts.CORSEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/", srv.Index)
	r.Get("/config", srv.Config)

	r.NotFound(srv.Static)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
