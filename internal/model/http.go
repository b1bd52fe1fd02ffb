package model

// ShortenRequest is the body of POST /shorten.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse carries the composed short URL.
type ShortenResponse struct {
	ShortURL string `json:"short_url"`
}

// ErrorResponse is returned with every non-2xx JSON answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	OK bool `json:"ok"`
}
