package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-yaml/yaml"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
)

// outputOptions are the encoding flags shared by commands that print results.
type outputOptions struct {
	format string
	indent bool
}

func addOutputFlags(cmd *cobra.Command, opts *outputOptions) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json or yaml (default from settings)")
	cmd.Flags().BoolVar(&opts.indent, "indent", true, "Indent JSON output")
}

// resolve merges explicit flags over the configured defaults.
func (o outputOptions) resolve(cmd *cobra.Command) (domain.OutputFormat, bool, error) {
	format := domain.OutputFormatJSON
	indent := true

	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			format = settings.Output.Format
			indent = settings.Output.Indent
		}
	}

	if o.format != "" {
		format = domain.OutputFormat(o.format)
	}
	if cmd.Flags().Changed("indent") {
		indent = o.indent
	}

	if !format.IsValid() {
		return "", false, fmt.Errorf("%w: output format %q", domain.ErrUnsupportedType, format)
	}
	return format, indent, nil
}

// writeEncoded writes v in the requested format followed by a newline.
func writeEncoded(w io.Writer, v any, format domain.OutputFormat, indent bool) error {
	data, err := encodeJSON(v, indent)
	if err != nil {
		return err
	}

	if format == domain.OutputFormatYAML {
		data, err = jsonToYAML(data)
		if err != nil {
			return err
		}
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func encodeJSON(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return buf.Bytes(), nil
}

// jsonToYAML re-encodes JSON as YAML. Decoding into a MapSlice keeps
// object members in document order.
func jsonToYAML(data []byte) ([]byte, error) {
	var doc any
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var m yaml.MapSlice
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("converting to yaml: %w", err)
		}
		doc = m
	} else {
		var items []yaml.MapSlice
		if err := yaml.Unmarshal(data, &items); err != nil {
			var generic any
			if err := yaml.Unmarshal(data, &generic); err != nil {
				return nil, fmt.Errorf("converting to yaml: %w", err)
			}
			doc = generic
		} else {
			doc = items
		}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return out, nil
}
