package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
)

var ErrNotConnected = errors.New("SSH client is not connected")

const DefaultSSHPort = 22

// SSHClient wraps an established SSH connection used for remote sampling
// and recording export.
type SSHClient struct {
	client *ssh.Client
}

func (s *SSHClient) GetClient() *ssh.Client {
	return s.client
}

func (s *SSHClient) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func newSSHConfig(user, keyFile string) (*ssh.ClientConfig, error) {
	keyData, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         10 * time.Second,
	}, nil
}

// Connect dials host with key auth, retrying transient dial and handshake
// failures with capped backoff until maxWait elapses or ctx is cancelled.
func Connect(ctx context.Context, user, host, keyFile string, port int, maxWait time.Duration) (*SSHClient, error) {
	config, err := newSSHConfig(user, keyFile)
	if err != nil {
		return nil, err
	}

	if port == 0 {
		port = DefaultSSHPort
	}
	address := net.JoinHostPort(host, strconv.Itoa(port))
	deadline := time.Now().Add(maxWait)
	backoff := time.Second
	maxBackoff := 10 * time.Second
	var lastErr error

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("connection cancelled: %w", err)
		}

		conn, err := net.DialTimeout("tcp", address, config.Timeout)
		if err == nil {
			sshConn, chans, reqs, handshakeErr := ssh.NewClientConn(conn, address, config)
			if handshakeErr == nil {
				return &SSHClient{client: ssh.NewClient(sshConn, chans, reqs)}, nil
			}
			_ = conn.Close()
			lastErr = handshakeErr
		} else {
			lastErr = err
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("failed to connect to %s within %s: %w", address, maxWait, lastErr)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// RunCommand executes a command over the connection and returns its
// combined output.
func RunCommand(client *SSHClient, command string) (string, error) {
	if client == nil || client.GetClient() == nil {
		return "", ErrNotConnected
	}

	session, err := client.GetClient().NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput(command)
	if err != nil {
		return string(output), fmt.Errorf("command failed: %w", err)
	}

	return string(output), nil
}
