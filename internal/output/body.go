package output

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// BuildBody starts from raw JSON ("{}" when empty) and applies each
// key=value assignment in order. Keys are sjson paths. Values that are valid
// JSON are set as-is, anything else is set as a string.
func BuildBody(raw string, sets []string) ([]byte, error) {
	if raw == "" {
		raw = "{}"
	}
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("data is not valid JSON")
	}

	body := []byte(raw)
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", s)
		}

		var err error
		if gjson.Valid(value) {
			body, err = sjson.SetRawBytes(body, key, []byte(value))
		} else {
			body, err = sjson.SetBytes(body, key, value)
		}
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", key, err)
		}
	}
	return body, nil
}
