package connection

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/crypto/ssh"
)

// SSHDriver is the fallback for flavours scrapligo has no platform
// definition for. One command per session, output returned raw.
type SSHDriver struct {
	client *ssh.Client
	mu     sync.Mutex
}

func NewSSHDriver(client *ssh.Client) *SSHDriver {
	return &SSHDriver{client: client}
}

func (d *SSHDriver) ProtocolType() Protocol {
	return ProtocolSSH
}

func (d *SSHDriver) Execute(ctx context.Context, req *ProtocolRequest) (*ProtocolResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if req == nil || req.CommandType != CommandTypeCommands {
		return nil, ErrUnsupportedCommandType
	}
	cmds, ok := req.Payload.([]string)
	if !ok {
		return nil, ErrUnsupportedInputType
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	var out strings.Builder
	for i, cmd := range cmds {
		session, err := d.client.NewSession()
		if err != nil {
			return nil, err
		}
		raw, err := session.CombinedOutput(cmd)
		session.Close()
		if err != nil {
			return nil, err
		}
		out.Write(raw)
		if i < len(cmds)-1 {
			out.WriteString("\n")
		}
	}

	return &ProtocolResponse{
		Success: true,
		RawData: []byte(out.String()),
	}, nil
}

func (d *SSHDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client == nil {
		return nil
	}
	err := d.client.Close()
	d.client = nil
	return err
}
