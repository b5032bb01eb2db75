package utils

import (
	"testing"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Target
		wantErr bool
	}{
		{name: "user host path", input: "ops@example.com:/var/lib/recordings", want: Target{User: "ops", Host: "example.com", Path: "/var/lib/recordings"}},
		{name: "user host only", input: "ops@example.com", want: Target{User: "ops", Host: "example.com"}},
		{name: "empty path after colon", input: "ops@example.com:", want: Target{User: "ops", Host: "example.com"}},
		{name: "relative path", input: "ops@box:recordings/today.jsonl", want: Target{User: "ops", Host: "box", Path: "recordings/today.jsonl"}},
		{name: "missing user", input: "example.com:/tmp", wantErr: true},
		{name: "empty user", input: "@example.com:/tmp", wantErr: true},
		{name: "missing host", input: "ops@:/tmp", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTarget(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTarget() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Fatalf("ParseTarget() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
