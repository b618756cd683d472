package domain

// RawDocument represents opaque bytes fetched by an ingestor.
// It is the ingestor's output before parsing.
type RawDocument struct {
	// URI is the original location (file path, "-" for stdin).
	URI string

	// Content is the raw bytes.
	Content []byte

	// Checksum is the hex content hash used for caching and change detection.
	Checksum string

	// DocumentID is a deterministic identifier derived from Content.
	DocumentID string
}
