package points

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/aliexpressru/qdrant-client-sub003/v1/filter"
)

// Encode renders a request body. Filters are written through
// filter.Filter.MarshalJSON and keep the bytes of filter.Filter.ToString:
// "<", ">" and "&" are not HTML-escaped. With indent set the output is
// indented by two spaces. Line endings are always "\n".
func Encode(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("points: encode %T: %w", v, err)
	}
	// Encode terminates the value with a newline.
	b := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return filter.NormalizeLineEndings(b), nil
}
