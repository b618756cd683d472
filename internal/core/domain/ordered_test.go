package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap_InsertionOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)
	m.Set("zeta", 4)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	assert.Equal(t, []int{4, 2, 3}, m.Values())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("zeta")
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.False(t, m.Has("missing"))
}

func TestOrderedMap_ZeroValue(t *testing.T) {
	var m OrderedMap[int, string]
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())

	m.Set(7, "seven")
	assert.Equal(t, []int{7}, m.Keys())
}

func TestOrderedMap_AllStopsEarly(t *testing.T) {
	var m OrderedMap[int, string]
	m.Set(1, "a")
	m.Set(2, "b")
	m.Set(3, "c")

	var seen []int
	for k := range m.All() {
		seen = append(seen, k)
		if k == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestOrderedMap_MarshalJSON(t *testing.T) {
	var m OrderedMap[int, string]
	m.Set(42, "b")
	m.Set(1, "a")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"42":"b","1":"a"}`, string(data))

	var empty OrderedMap[string, int]
	data, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
