package model

// URLMapping is a persisted association between a short code and the
// original URL. ID is assigned by the storage backend.
type URLMapping struct {
	ID       int64  `json:"id"`
	Original string `json:"original"`
	Short    string `json:"short"`
}
