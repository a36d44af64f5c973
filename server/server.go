// Package server exposes a collection over a local HTTP API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/etnz/cardfolio"
	"github.com/etnz/cardfolio/capture"
	"github.com/etnz/cardfolio/plot"
	"github.com/etnz/cardfolio/renderer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxUpload is the largest accepted image upload.
const maxUpload = 10 << 20

// Server serves a collection.
//
// Requests are serialized on a mutex, the Binder is never used concurrently.
type Server struct {
	mu     sync.Mutex
	binder *cardfolio.Binder

	currency      string
	width, height int
	now           func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithCurrency sets the currency of rendered values. Default: cardfolio.DefaultCurrency.
func WithCurrency(currency string) Option { return func(s *Server) { s.currency = currency } }

// WithChartSize sets the size of the charts in pixels. Default: 600x240.
func WithChartSize(width, height int) Option {
	return func(s *Server) { s.width, s.height = width, height }
}

// WithClock sets the clock used to name uploads without a file name.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// New returns a server for the collection owned by b.
func New(b *cardfolio.Binder, opts ...Option) *Server {
	s := &Server{
		binder:   b,
		currency: cardfolio.DefaultCurrency,
		width:    600,
		height:   240,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router of all endpoints, with request logging.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	s.RegisterHTTP(r)
	return r
}

// RegisterHTTP registers the endpoints on r.
func (s *Server) RegisterHTTP(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/export", s.handleExport)

	r.Route("/cards", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleAdd)
		r.Delete("/", s.handleClear)
		r.Post("/upload", s.handleUpload)
		r.Get("/{id}", s.handleGet)
		r.Delete("/{id}", s.handleDelete)
		r.Get("/{id}/chart.png", s.handleChart)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	md := renderer.RenderCollection(renderer.NewCollection(s.binder.Collection(), s.currency))
	s.mu.Unlock()

	page, err := renderer.Page("Collection", md)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, page)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.writeCollection(w, false)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cardfolio.ExportFilename))
	s.writeCollection(w, true)
}

func (s *Server) writeCollection(w http.ResponseWriter, indent bool) {
	var buf bytes.Buffer
	s.mu.Lock()
	err := cardfolio.EncodeCollection(&buf, s.binder.Collection(), indent)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var c cardfolio.Card
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid card: %w", err))
		return
	}
	s.add(w, r, c)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	f, hdr, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing image: %w", err))
		return
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("cannot read image: %w", err))
		return
	}
	s.add(w, r, capture.FromBytes(hdr.Filename, b, s.now()))
}

func (s *Server) add(w http.ResponseWriter, r *http.Request, c cardfolio.Card) {
	s.mu.Lock()
	e, err := s.binder.Add(r.Context(), c)
	s.mu.Unlock()
	switch {
	case errors.Is(err, cardfolio.ErrMissingName), errors.Is(err, cardfolio.ErrMissingExpansion):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		// the entry is kept in memory, only the persistence failed.
		log.Printf("warning, %v", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	e, ok := s.binder.Collection().Get(id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("card %q: %w", id, cardfolio.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	err := s.binder.Delete(r.Context(), id)
	s.mu.Unlock()
	switch {
	case errors.Is(err, cardfolio.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.binder.Clear(r.Context())
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleChart draws the value history of a card. The id "latest" selects the
// most recent card.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	e, ok := s.binder.Collection().Lookup(id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("card %q: %w", id, cardfolio.ErrNotFound))
		return
	}

	var buf bytes.Buffer
	if err := plot.EncodePNG(&buf, s.width, s.height, e.Series()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
