package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// JSONOptions controls JSON rendering.
type JSONOptions struct {
	// Query is a gjson path selecting part of the value. Empty prints everything.
	Query string

	// Compact prints the value on a single line.
	Compact bool
}

// JSON writes v to w as JSON followed by a newline.
func JSON(w io.Writer, v any, opts JSONOptions) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data := buf.Bytes()

	if opts.Query != "" {
		res := gjson.GetBytes(data, opts.Query)
		if !res.Exists() {
			return fmt.Errorf("query %q matched nothing", opts.Query)
		}
		data = []byte(res.Raw)
	}

	if opts.Compact {
		data = pretty.Ugly(data)
	} else {
		data = pretty.Pretty(data)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}

	_, err := w.Write(data)
	return err
}
