package wxr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elliotchance/phpserialize"
)

// settingsTypeKey is the key of the field type in an ACF settings blob.
const settingsTypeKey = "type"

var errEmptySettings = errors.New("empty settings")

// decodeFieldType reads the field type from the PHP-serialized settings
// stored as an acf-field post's content. A blob that is not a serialized
// array is an error; an array without a type yields "".
func decodeFieldType(blob string) (fieldType string, err error) {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return "", errEmptySettings
	}

	// The decoder indexes by declared lengths and can panic on truncated input.
	defer func() {
		if r := recover(); r != nil {
			fieldType, err = "", fmt.Errorf("truncated settings: %v", r)
		}
	}()

	settings, err := phpserialize.UnmarshalAssociativeArray([]byte(blob))
	if err != nil {
		return "", err
	}

	switch t := settings[settingsTypeKey].(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	default:
		return fmt.Sprint(t), nil
	}
}
