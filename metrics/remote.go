package metrics

import (
	"fmt"

	"github.com/plotdeck/plotdeck/utils"
)

// DefaultRemoteCommand is sampled on remote hosts when no command is given.
const DefaultRemoteCommand = "cat /proc/loadavg"

// RemoteSource samples by running a command on an established SSH
// connection and parsing the first float in its output.
type RemoteSource struct {
	label   string
	client  *utils.SSHClient
	command string
}

// NewRemoteSource creates a source running command over client. An empty
// command falls back to DefaultRemoteCommand.
func NewRemoteSource(label string, client *utils.SSHClient, command string) *RemoteSource {
	if command == "" {
		command = DefaultRemoteCommand
	}
	return &RemoteSource{
		label:   label,
		client:  client,
		command: command,
	}
}

func (r *RemoteSource) Label() string {
	return r.label
}

func (r *RemoteSource) Sample() (float64, error) {
	output, err := utils.RunCommand(r.client, r.command)
	if err != nil {
		return 0, fmt.Errorf("remote sample failed: %w", err)
	}
	return firstFloat(output)
}
