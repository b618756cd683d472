// Package ingest provides Ingestor strategies that fetch export bytes.
//
// FileIngestor reads local paths and file:// URIs and hands "-" to a
// ReaderIngestor over standard input. Neither strategy looks inside the
// content; loading and validation belong to the parser.
package ingest
