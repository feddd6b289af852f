package registry

import (
	"github.com/charlesren/cli_device_gateway/connection"
	"github.com/charlesren/cli_device_gateway/devicetype"
)

// Built-in dialects. Each covers one flavour at wildcard version; a
// deployment pinning exact versions registers its own metas instead.

type iosDialect struct{}

func (iosDialect) PromptPattern() string { return `[\w.\-@/:]{1,63}[#>]\s?$` }
func (iosDialect) FormatCommand(cmd string) string {
	return cmd
}

type junosDialect struct{}

func (junosDialect) PromptPattern() string { return `[\w.\-@/:]{1,63}[%>]\s?$` }
func (junosDialect) FormatCommand(cmd string) string {
	return cmd + " | no-more"
}

type vrpDialect struct{}

func (vrpDialect) PromptPattern() string { return `[<\[][\w.\-@/:]{1,63}[>\]]\s?$` }
func (vrpDialect) FormatCommand(cmd string) string {
	return cmd
}

// RegisterBuiltins loads the stock dialect metas into reg. Registration
// errors only occur on duplicates, so the first error is returned as-is.
func RegisterBuiltins(reg Registry) error {
	metas := []DialectMeta{
		{
			Type:        devicetype.New("ios", devicetype.VersionAny),
			Description: "Cisco IOS / IOS-XE",
			Protocols: []ProtocolSupport{
				{Protocol: connection.ProtocolScrapli, ImplFactory: func() Dialect { return iosDialect{} }},
				{Protocol: connection.ProtocolSSH, ImplFactory: func() Dialect { return iosDialect{} }},
			},
		},
		{
			Type:        devicetype.New("junos", devicetype.VersionAny),
			Description: "Juniper JunOS",
			Protocols: []ProtocolSupport{
				{Protocol: connection.ProtocolScrapli, ImplFactory: func() Dialect { return junosDialect{} }},
			},
		},
		{
			Type:        devicetype.New("vrp", devicetype.VersionAny),
			Description: "Huawei VRP",
			Protocols: []ProtocolSupport{
				{Protocol: connection.ProtocolScrapli, ImplFactory: func() Dialect { return vrpDialect{} }},
			},
		},
	}
	for _, meta := range metas {
		if err := reg.Register(meta); err != nil {
			return err
		}
	}
	return nil
}
