package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

func TestFieldsCmd_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("fields", exportFixture)
	require.NoError(t, err)

	assert.Contains(t, out, "FIELD ID")
	assert.Contains(t, out, "field_parent")
	assert.Contains(t, out, "repeater")
	assert.Contains(t, out, "field_123")
	assert.Contains(t, out, "My Field")
	assert.NotContains(t, out, "field_corrupt")
	assert.Contains(t, out, "3 definition(s)")
}

func TestFieldsCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("fields", exportFixture, "--format", "json")
	require.NoError(t, err)

	var defs []domain.FieldDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.Len(t, defs, 3)
	assert.Equal(t, "field_123", defs[1].ID)
	assert.Equal(t, 100, defs[1].ParentPostID)
}

func TestFieldsCmd_NoDefinitions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("fields", "../../../wxr/testdata/no_namespaces.xml")
	require.NoError(t, err)

	assert.Contains(t, out, "No custom field definitions.")
}
