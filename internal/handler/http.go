package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MikhailRaia/shortlink/internal/logger"
	"github.com/MikhailRaia/shortlink/internal/middleware"
	"github.com/MikhailRaia/shortlink/internal/model"
	"github.com/MikhailRaia/shortlink/internal/pool"
	"github.com/MikhailRaia/shortlink/internal/service"
	"github.com/MikhailRaia/shortlink/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	msgNoURL          = "No URL provided"
	msgInvalidBody    = "Invalid request body"
	msgNotFound       = "Short URL not found"
	msgInternalError  = "Internal server error"
	maxRequestBody    = 1 << 20
	bufferPoolSize    = 64
	jsonContentHeader = "application/json"
)

// ReservedPaths are the fixed top-level routes. A short code equal to one
// of them could never be resolved through GET /{code}.
var ReservedPaths = []string{"shorten", "health", "ping"}

type URLService interface {
	ShortenURL(ctx context.Context, originalURL, requestBase string) (string, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	urlService URLService
	buffers    *pool.Pool[*bytes.Buffer]
}

func NewHandler(urlService URLService) *Handler {
	return &Handler{
		urlService: urlService,
		buffers: pool.New(bufferPoolSize, func() *bytes.Buffer {
			return new(bytes.Buffer)
		}),
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	r.Use(middleware.GzipReader)
	r.Use(middleware.GzipMiddleware)

	r.Post("/shorten", h.handleShorten)
	r.Get("/health", h.handleHealth)
	r.Get("/ping", h.handlePing)
	r.Get("/{code}", h.handleRedirect)

	return r
}

func (h *Handler) handleShorten(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	defer r.Body.Close()

	if len(bytes.TrimSpace(body)) == 0 {
		h.writeError(w, http.StatusBadRequest, msgNoURL)
		return
	}

	var request model.ShortenRequest
	if err := json.Unmarshal(body, &request); err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	shortURL, err := h.urlService.ShortenURL(r.Context(), request.URL, requestBase(r))
	if err != nil {
		if errors.Is(err, service.ErrMissingURL) {
			h.writeError(w, http.StatusBadRequest, msgNoURL)
			return
		}

		log.Error().Err(err).Msg("Failed to shorten URL")
		h.writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.writeJSON(w, http.StatusOK, model.ShortenResponse{ShortURL: shortURL})
}

func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	originalURL, err := h.urlService.GetOriginalURL(r.Context(), code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		log.Error().Err(err).Str("code", code).Msg("Failed to resolve short code")
		h.writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	// The stored URL is not validated, so it is sent back exactly as given.
	w.Header().Set("Location", originalURL)
	w.WriteHeader(http.StatusFound)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, model.HealthResponse{OK: true})
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	if err := h.urlService.Ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("Storage ping failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.ErrorResponse{Error: message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	buf := h.buffers.Get()
	defer h.buffers.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", jsonContentHeader)
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// requestBase is the scheme and host the request was addressed to,
// used when no base URL is configured.
func requestBase(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}
