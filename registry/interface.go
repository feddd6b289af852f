package registry

import (
	"github.com/charlesren/cli_device_gateway/connection"
	"github.com/charlesren/cli_device_gateway/devicetype"
)

// Dialect is one CLI-handling implementation. The gateway picks it by
// device type and hands it the raw channel; what the handler does with
// prompts and command formatting is its own business.
type Dialect interface {
	// PromptPattern is the regex recognizing this dialect's prompt.
	PromptPattern() string
	// FormatCommand rewrites a logical command into the dialect's syntax.
	FormatCommand(cmd string) string
}

type DialectMeta struct {
	Type        devicetype.DeviceType
	Description string
	Protocols   []ProtocolSupport
}

type ProtocolSupport struct {
	Protocol    connection.Protocol
	ImplFactory func() Dialect
}

type Registry interface {
	Register(meta DialectMeta) error
	Discover(deviceType devicetype.DeviceType, protocol connection.Protocol) (Dialect, error)
	Types() []devicetype.DeviceType
}
