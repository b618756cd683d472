// Package wxr turns a WordPress export into a resolved domain.Result.
//
// Parsing runs in two strict passes over one loaded document. The builder
// walks the channel once and collects authors, terms, posts, a post meta
// index and the registry of custom field definitions (acf-field posts).
// The resolver then reconciles every post's meta against the complete
// registry, grouping repeater rows under their parent field and replacing
// attachment ids with attachment URLs.
//
// A Parser holds no per-document state and may be shared between
// goroutines; every Parse call owns its own working set.
package wxr
