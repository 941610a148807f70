package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	value := []any{
		map[string]any{
			"openid":        map[string]any{"id": "1", "email": "a@b.com"},
			"refresh_token": "r1",
		},
	}

	tests := []struct {
		name    string
		opts    JSONOptions
		want    any
		wantErr bool
	}{
		{name: "whole value", opts: JSONOptions{}, want: value},
		{name: "query string field", opts: JSONOptions{Query: "0.openid.email"}, want: "a@b.com"},
		{name: "query all emails", opts: JSONOptions{Query: "#.openid.email"}, want: []any{"a@b.com"}},
		{name: "compact", opts: JSONOptions{Compact: true}, want: value},
		{name: "missing path", opts: JSONOptions{Query: "0.nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := JSON(&buf, value, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("JSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			out := buf.String()
			if !strings.HasSuffix(out, "\n") {
				t.Errorf("output %q does not end with a newline", out)
			}
			if tt.opts.Compact && strings.Count(out, "\n") != 1 {
				t.Errorf("compact output spans lines: %q", out)
			}

			var got any
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("JSON() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]any{"a": 1}, JSONOptions{}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if got, want := buf.String(), "{\n  \"a\": 1\n}\n"; got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}

func TestJSON_NoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]string{"q": "<a&b>"}, JSONOptions{Compact: true}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if got, want := buf.String(), "{\"q\":\"<a&b>\"}\n"; got != want {
		t.Errorf("JSON() = %q, want %q", got, want)
	}
}
