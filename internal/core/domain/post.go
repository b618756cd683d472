package domain

import "strings"

// Post types with special handling.
const (
	PostTypeAttachment = "attachment"
	PostTypeACFField   = "acf-field"
)

// Post is a content item of any type, including attachments and the
// acf-field pseudo-posts that carry custom field definitions.
type Post struct {
	ID            int     `json:"post_id"`
	Type          string  `json:"post_type"`
	Title         string  `json:"post_title"`
	GUID          string  `json:"guid"`
	Author        string  `json:"post_author"`
	Content       string  `json:"post_content"`
	Excerpt       string  `json:"post_excerpt"`
	Date          string  `json:"post_date"`
	DateGMT       string  `json:"post_date_gmt"`
	CommentStatus string  `json:"comment_status"`
	PingStatus    string  `json:"ping_status"`
	Name          string  `json:"post_name"`
	Status        string  `json:"status"`
	Parent        int     `json:"post_parent"`
	MenuOrder     int     `json:"menu_order"`
	Password      string  `json:"post_password"`
	IsSticky      bool    `json:"is_sticky"`
	AttachmentURL *string `json:"attachment_url,omitempty"`

	Terms    []TermRef   `json:"terms"`
	Comments []Comment   `json:"comments"`
	PostMeta []MetaEntry `json:"postmeta"`

	// CustomFields maps a field name (or a parent field name for repeater
	// rows) to its resolved values.
	CustomFields OrderedMap[string, CustomField] `json:"custom_fields"`
}

// IsAttachment reports whether the post is a media attachment.
func (p *Post) IsAttachment() bool {
	return p.Type == PostTypeAttachment
}

// TermRef is a category element on an item.
type TermRef struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Domain string `json:"domain"`
}

// Comment is a comment embedded in its post.
type Comment struct {
	ID          int        `json:"comment_id"`
	Author      string     `json:"comment_author"`
	AuthorEmail string     `json:"comment_author_email"`
	AuthorIP    string     `json:"comment_author_IP"`
	AuthorURL   string     `json:"comment_author_url"`
	Date        string     `json:"comment_date"`
	DateGMT     string     `json:"comment_date_gmt"`
	Content     string     `json:"comment_content"`
	Approved    string     `json:"comment_approved"`
	Type        string     `json:"comment_type"`
	Parent      int        `json:"comment_parent"`
	UserID      int        `json:"comment_user_id"`
	Meta        []KeyValue `json:"commentmeta"`
}

// CommentThread is a comment and its replies.
type CommentThread struct {
	Comment
	Children []CommentThread `json:"children,omitempty"`
}

// CommentThreads arranges the post's comments into reply trees.
// Roots are comments with parent 0; trashed comments are left out.
func (p *Post) CommentThreads() []CommentThread {
	byParent := make(map[int][]Comment)
	for _, c := range p.Comments {
		if c.Approved != "trash" {
			byParent[c.Parent] = append(byParent[c.Parent], c)
		}
	}

	roots := make([]CommentThread, 0, len(byParent[0]))
	for _, c := range byParent[0] {
		roots = append(roots, threadLevel(c, byParent, map[int]bool{}))
	}
	return roots
}

func threadLevel(node Comment, byParent map[int][]Comment, seen map[int]bool) CommentThread {
	thread := CommentThread{Comment: node}
	if seen[node.ID] {
		return thread
	}
	seen[node.ID] = true
	for _, c := range byParent[node.ID] {
		thread.Children = append(thread.Children, threadLevel(c, byParent, seen))
	}
	return thread
}

// MetaRecord is one raw wp:postmeta pair as discovered in the document.
type MetaRecord struct {
	PostID int
	Key    string
	Value  string
}

// MetaKind classifies a raw meta value.
type MetaKind int

const (
	// MetaPlain is an ordinary key/value pair.
	MetaPlain MetaKind = iota

	// MetaFieldReference is an underscore-prefixed key whose value names a
	// registered field definition.
	MetaFieldReference

	// MetaUnresolved looks like a field reference but names no registered
	// definition.
	MetaUnresolved
)

// String returns the string representation.
func (k MetaKind) String() string {
	switch k {
	case MetaPlain:
		return "plain"
	case MetaFieldReference:
		return "field_reference"
	case MetaUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// FieldIDPrefix starts every generated ACF field key.
const FieldIDPrefix = "field_"

// MetaEntry is a raw meta pair kept verbatim on its post, tagged with the
// classification made once during resolution.
type MetaEntry struct {
	Key   string   `json:"key"`
	Value string   `json:"value"`
	Kind  MetaKind `json:"-"`
}

// IsReferenceKey reports whether a meta key has the hidden-key form ACF
// uses for field references.
func IsReferenceKey(key string) bool {
	return strings.HasPrefix(key, "_")
}
