package wxr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFieldType(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		want    string
		wantErr bool
	}{
		{
			name: "text field",
			blob: `a:3:{s:4:"type";s:4:"text";s:12:"instructions";s:0:"";s:8:"required";i:0;}`,
			want: "text",
		},
		{
			name: "surrounding whitespace",
			blob: "\n  a:1:{s:4:\"type\";s:5:\"image\";}  \n",
			want: "image",
		},
		{
			name: "no type key",
			blob: `a:1:{s:5:"label";s:4:"Name";}`,
			want: "",
		},
		{
			name:    "not serialized",
			blob:    "this is not serialized",
			wantErr: true,
		},
		{
			name:    "empty",
			blob:    "",
			wantErr: true,
		},
		{
			name:    "truncated",
			blob:    `a:1:{s:4:"type";s:4:"te`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeFieldType(tt.blob)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
