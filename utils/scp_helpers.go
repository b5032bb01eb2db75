package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	scp "github.com/bramvdbogaerde/go-scp"
)

// UploadFile copies a local file to remotePath over an established SSH
// connection. progressCallback, when non-nil, receives (sent, total) byte
// counts as the transfer proceeds.
func UploadFile(ctx context.Context, client *SSHClient, localPath, remotePath string, progressCallback func(sent, total int64)) error {
	if client == nil || client.GetClient() == nil {
		return ErrNotConnected
	}

	scpClient, err := scp.NewClientBySSH(client.GetClient())
	if err != nil {
		return fmt.Errorf("failed to create SCP client: %w", err)
	}

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat local file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a recording file", localPath)
	}

	var reader io.Reader = file
	if progressCallback != nil {
		reader = &progressReader{
			reader:   file,
			total:    info.Size(),
			callback: progressCallback,
		}
	}

	err = scpClient.CopyFile(ctx, reader, remotePath, fmt.Sprintf("0%o", info.Mode().Perm()))
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("upload cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("SCP upload failed: %w", err)
	}

	return nil
}

// RemoteFileSize verifies an uploaded file by size, as a cheap integrity
// check after transfer.
func RemoteFileSize(client *SSHClient, path string) (int64, error) {
	output, err := RunCommand(client, fmt.Sprintf("stat --format=%%s %s", shellEscape(path)))
	if err != nil {
		return 0, fmt.Errorf("failed to stat remote file: %w", err)
	}

	size, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse remote file size: %w", err)
	}
	return size, nil
}

func shellEscape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

type progressReader struct {
	reader   io.Reader
	total    int64
	sent     int64
	callback func(sent, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.callback(p.sent, p.total)
	}
	return n, err
}
