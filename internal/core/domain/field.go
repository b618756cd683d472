package domain

import "encoding/json"

// FieldDefinition is one custom field's schema, itself stored as a post of
// type acf-field.
type FieldDefinition struct {
	// ID is the field key, e.g. field_5f1a2b3c4d5e6 (the post's name).
	ID string `json:"field_id"`

	// Type is the field type from the settings blob, e.g. "text", "image".
	Type string `json:"type"`

	// Name is the human label (the post's excerpt).
	Name string `json:"name"`

	// ParentPostID is the post parent: a parent field's post id, a field
	// group, or 0.
	ParentPostID int `json:"parent"`

	// PostID is the id of the acf-field post that defines this field.
	PostID int `json:"post_id"`
}

// FieldEntry is one raw value entry belonging to a resolved field.
type FieldEntry struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	FieldID string `json:"fieldId"`
}

// CustomField is the resolved value of one custom_fields key.
// A field without a parent holds Entries; a parent (repeater) field collects
// one row per resolved sub-field in Rows.
type CustomField struct {
	Entries []FieldEntry
	Rows    [][]FieldEntry
}

// IsGroup reports whether the value collects repeater rows.
func (f CustomField) IsGroup() bool {
	return f.Rows != nil
}

// MarshalJSON writes the flat entry list or the list of rows.
func (f CustomField) MarshalJSON() ([]byte, error) {
	if f.IsGroup() {
		return json.Marshal(f.Rows)
	}
	if f.Entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.Entries)
}
