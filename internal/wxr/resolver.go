package wxr

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// resolver reconciles raw post meta against the field definition registry.
// It reads the builder's collections and never modifies them.
type resolver struct {
	posts  domain.OrderedMap[int, domain.Post]
	fields domain.OrderedMap[string, domain.FieldDefinition]

	// byDefiningPost maps an acf-field post id to the field ids it defines.
	byDefiningPost map[int][]string
}

func newResolver(
	posts domain.OrderedMap[int, domain.Post],
	fields domain.OrderedMap[string, domain.FieldDefinition],
) *resolver {
	byDefiningPost := make(map[int][]string, fields.Len())
	for id, def := range fields.All() {
		byDefiningPost[def.PostID] = append(byDefiningPost[def.PostID], id)
	}
	return &resolver{posts: posts, fields: fields, byDefiningPost: byDefiningPost}
}

// resolve returns a new post collection, in the same order, with each
// post's postmeta and custom fields filled in from meta.
func (r *resolver) resolve(meta map[int][]domain.MetaRecord) domain.OrderedMap[int, domain.Post] {
	var out domain.OrderedMap[int, domain.Post]
	for id, post := range r.posts.All() {
		out.Set(id, r.resolvePost(post, meta[id]))
	}
	return out
}

func (r *resolver) resolvePost(post domain.Post, records []domain.MetaRecord) domain.Post {
	post.PostMeta = make([]domain.MetaEntry, 0, len(records))

	var custom domain.OrderedMap[string, domain.CustomField]
	for _, rec := range records {
		kind := r.classify(rec)
		post.PostMeta = append(post.PostMeta, domain.MetaEntry{Key: rec.Key, Value: rec.Value, Kind: kind})

		// Each reference is placed on its own: a repeater gains one row
		// per sibling reference, a top-level field is overwritten in place.
		if kind != domain.MetaFieldReference {
			continue
		}
		r.place(&custom, rec.Value, r.fieldValues(records, rec.Value))
	}

	post.CustomFields = custom
	return post
}

// classify tags a meta record once. Only an underscore key whose value is
// a registered field id is a reference.
func (r *resolver) classify(rec domain.MetaRecord) domain.MetaKind {
	if !domain.IsReferenceKey(rec.Key) {
		return domain.MetaPlain
	}
	if r.fields.Has(rec.Value) {
		return domain.MetaFieldReference
	}
	if strings.HasPrefix(rec.Value, domain.FieldIDPrefix) {
		return domain.MetaUnresolved
	}
	return domain.MetaPlain
}

// fieldValues selects the raw entries holding fieldID's values: the keys
// that reference fieldID, with the leading underscore removed, name them.
func (r *resolver) fieldValues(records []domain.MetaRecord, fieldID string) []domain.FieldEntry {
	keys := make(map[string]bool)
	for _, rec := range records {
		if rec.Value == fieldID {
			keys[strings.TrimPrefix(rec.Key, "_")] = true
		}
	}

	entries := make([]domain.FieldEntry, 0, len(keys))
	for _, rec := range records {
		if keys[rec.Key] {
			entries = append(entries, domain.FieldEntry{
				Key:     rec.Key,
				Value:   r.substitute(rec.Value),
				FieldID: fieldID,
			})
		}
	}
	return entries
}

// substitute replaces an all-digit value naming an attachment post with
// that attachment's URL. Any other value is returned unchanged.
func (r *resolver) substitute(value string) string {
	if !isDigits(value) {
		return value
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return value
	}

	target, ok := r.posts.Get(id)
	if !ok || !target.IsAttachment() || target.AttachmentURL == nil {
		return value
	}
	return *target.AttachmentURL
}

// place stores entries under the field's own name, or appends them as one
// row under the parent field's name for repeater sub-fields.
func (r *resolver) place(custom *domain.OrderedMap[string, domain.CustomField], fieldID string, entries []domain.FieldEntry) {
	def, _ := r.fields.Get(fieldID)

	parent := r.parentName(def)
	if parent == "" {
		custom.Set(def.Name, domain.CustomField{Entries: entries})
		return
	}

	group, _ := custom.Get(parent)
	if !group.IsGroup() {
		rows := [][]domain.FieldEntry{}
		if len(group.Entries) > 0 {
			rows = append(rows, group.Entries)
		}
		group = domain.CustomField{Rows: rows}
	}
	group.Rows = append(group.Rows, entries)
	custom.Set(parent, group)
}

// parentName returns the name of the definition whose defining post is
// def's parent. Only the immediate parent is consulted, and an absent or
// ambiguous parent yields "".
func (r *resolver) parentName(def domain.FieldDefinition) string {
	if def.ParentPostID == 0 {
		return ""
	}

	candidates := r.byDefiningPost[def.ParentPostID]
	if len(candidates) != 1 {
		return ""
	}
	parent, _ := r.fields.Get(candidates[0])
	return parent.Name
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
