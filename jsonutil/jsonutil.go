// Package jsonutil provides the presentation-layer JSON helpers used by
// the chainctl command: pretty-printing any marshalable value and
// dumping Go values for diagnostics the same way the module's tests do.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Pretty renders v as indented JSON, using the same MarshalJSON methods
// every core type in the module already implements.
func Pretty(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("jsonutil: encode: %w", err)
	}
	return buf.String(), nil
}

// Dump renders v using spew's Go-syntax representation, the format the
// module's tests use when a failure needs the full structure of a value
// rather than its JSON projection.
func Dump(v any) string {
	return spew.Sdump(v)
}
