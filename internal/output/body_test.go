package output

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBuildBody(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		sets    []string
		want    any
		wantErr bool
	}{
		{name: "empty", want: map[string]any{}},
		{name: "raw only", raw: `{"a":1}`, want: map[string]any{"a": float64(1)}},
		{
			name: "string and json values",
			sets: []string{"email=a@b.com", "count=3", "active=true", `tags=["x"]`},
			want: map[string]any{
				"email":  "a@b.com",
				"count":  float64(3),
				"active": true,
				"tags":   []any{"x"},
			},
		},
		{
			name: "nested path over raw",
			raw:  `{"openid":{"id":"1"}}`,
			sets: []string{"openid.email=a@b.com"},
			want: map[string]any{"openid": map[string]any{"id": "1", "email": "a@b.com"}},
		},
		{name: "invalid raw", raw: `{"a":`, wantErr: true},
		{name: "missing equals", sets: []string{"email"}, wantErr: true},
		{name: "empty key", sets: []string{"=x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := BuildBody(tt.raw, tt.sets)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildBody() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			var got any
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatalf("body is not JSON: %v (%s)", err, body)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildBody() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
