package utils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunCommandNotConnected(t *testing.T) {
	t.Parallel()

	if _, err := RunCommand(nil, "true"); err != ErrNotConnected {
		t.Fatalf("RunCommand(nil) error = %v, want ErrNotConnected", err)
	}
	if _, err := RunCommand(&SSHClient{}, "true"); err != ErrNotConnected {
		t.Fatalf("RunCommand(empty client) error = %v, want ErrNotConnected", err)
	}
}

func TestConnectMissingKey(t *testing.T) {
	t.Parallel()

	_, err := Connect(context.Background(), "ops", "localhost", filepath.Join(t.TempDir(), "missing"), 22, time.Second)
	if err == nil {
		t.Fatal("Connect() expected error for missing key file")
	}
	if !strings.Contains(err.Error(), "failed to read private key") {
		t.Fatalf("Connect() error = %v, want key read failure", err)
	}
}

func TestConnectInvalidKey(t *testing.T) {
	t.Parallel()

	keyFile := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(keyFile, []byte("not a key"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := Connect(context.Background(), "ops", "localhost", keyFile, 22, time.Second)
	if err == nil {
		t.Fatal("Connect() expected error for invalid key file")
	}
	if !strings.Contains(err.Error(), "failed to parse private key") {
		t.Fatalf("Connect() error = %v, want key parse failure", err)
	}
}

func TestShellEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "plain", want: "'plain'"},
		{input: "with space", want: "'with space'"},
		{input: "quo'te", want: `'quo'\''te'`},
	}

	for _, tt := range tests {
		if got := shellEscape(tt.input); got != tt.want {
			t.Fatalf("shellEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUploadFileNotConnected(t *testing.T) {
	t.Parallel()

	err := UploadFile(context.Background(), nil, "local", "remote", nil)
	if err != ErrNotConnected {
		t.Fatalf("UploadFile(nil) error = %v, want ErrNotConnected", err)
	}
}

func TestProgressReader(t *testing.T) {
	t.Parallel()

	var gotSent, gotTotal int64
	pr := &progressReader{
		reader:   strings.NewReader("hello"),
		total:    5,
		callback: func(sent, total int64) { gotSent, gotTotal = sent, total },
	}

	buf := make([]byte, 2)
	if _, err := pr.Read(buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if gotSent != 2 || gotTotal != 5 {
		t.Fatalf("callback got (%d, %d), want (2, 5)", gotSent, gotTotal)
	}

	if _, err := pr.Read(make([]byte, 8)); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if gotSent != 5 {
		t.Fatalf("callback sent = %d, want 5", gotSent)
	}
}
