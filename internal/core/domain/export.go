package domain

// Result is the fully cross-referenced model of one WordPress export.
// It is built once per parse and never mutated afterwards.
type Result struct {
	// Source identifies the bytes this result was built from.
	Source SourceInfo `json:"source"`

	// Version is the trimmed wp:wxr_version value.
	Version string `json:"version"`

	// BaseURL is wp:base_site_url.
	BaseURL string `json:"base_url"`

	// BaseBlogURL is wp:base_blog_url, or BaseURL when absent.
	BaseBlogURL string `json:"base_blog_url"`

	// Authors are keyed by login; a repeated login keeps the last record.
	Authors OrderedMap[string, Author] `json:"authors"`

	// PostTypes lists each post type once, in order of first appearance.
	PostTypes []string `json:"post_types"`

	// Posts are keyed by post id in document order.
	Posts OrderedMap[int, Post] `json:"posts"`

	// Categories, Tags and Terms are the channel-level taxonomy records.
	Categories []Term `json:"categories"`
	Tags       []Term `json:"tags"`
	Terms      []Term `json:"terms"`

	// CustomFields is the field definition registry keyed by field id.
	CustomFields OrderedMap[string, FieldDefinition] `json:"custom_fields"`

	// CustomFieldNames holds the human names of registered fields in
	// discovery order.
	CustomFieldNames []string `json:"custom_fields_names"`

	// Diagnostics lists per-record anomalies absorbed during the build.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// SourceInfo describes the input document.
type SourceInfo struct {
	// DocumentID is a deterministic identifier derived from the content.
	DocumentID string `json:"document_id,omitempty"`

	// Checksum is the hex content hash.
	Checksum string `json:"checksum,omitempty"`

	// URI is where the bytes came from, when known.
	URI string `json:"uri,omitempty"`

	// Size is the content length in bytes.
	Size int `json:"size"`
}

// Post returns the post with the given id.
func (r *Result) Post(id int) (Post, bool) {
	return r.Posts.Get(id)
}

// PostsOfType returns the posts of one post type in document order.
func (r *Result) PostsOfType(postType string) []Post {
	var out []Post
	for _, p := range r.Posts.All() {
		if p.Type == postType {
			out = append(out, p)
		}
	}
	return out
}

// Diagnostic records a per-record anomaly that did not abort the parse.
type Diagnostic struct {
	PostID  int    `json:"post_id"`
	FieldID string `json:"field_id,omitempty"`
	Message string `json:"message"`
}

// Author is a content author from a wp:author node.
type Author struct {
	ID          int    `json:"author_id"`
	Login       string `json:"author_login"`
	Email       string `json:"author_email"`
	DisplayName string `json:"author_display_name"`
	FirstName   string `json:"author_first_name"`
	LastName    string `json:"author_last_name"`
}

// Taxonomy names for the built-in term flavours.
const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
)

// Term is a category, tag or generic taxonomy term.
// The three flavours share this shape and are kept in separate sequences.
type Term struct {
	ID          int        `json:"term_id"`
	Taxonomy    string     `json:"taxonomy"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Parent      string     `json:"parent"`
	Description string     `json:"description"`
	Meta        []KeyValue `json:"termmeta,omitempty"`
}

// KeyValue is an ordered meta pair on a term or comment.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
