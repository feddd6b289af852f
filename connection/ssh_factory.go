package connection

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/ssh"
)

type SSHFactory struct{}

func NewSSHFactory() *SSHFactory {
	return &SSHFactory{}
}

func (f *SSHFactory) Create(config ConnectionConfig) (ProtocolDriver, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("host cannot be empty")
	}
	if config.Port == 0 {
		config.Port = 22
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	client, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", config.Host, config.Port),
		&ssh.ClientConfig{
			User:            config.Username,
			Auth:            []ssh.AuthMethod{ssh.Password(config.Password)},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(),
			Timeout:         config.Timeout,
		})
	if err != nil {
		return nil, fmt.Errorf("ssh dial %s failed: %w", config.Host, err)
	}

	return NewSSHDriver(client), nil
}

func (f *SSHFactory) HealthCheck(driver ProtocolDriver) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := driver.Execute(ctx, &ProtocolRequest{
		CommandType: CommandTypeCommands,
		Payload:     []string{""},
	})
	return err == nil
}
