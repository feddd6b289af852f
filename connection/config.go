package connection

import (
	"time"

	"github.com/charlesren/cli_device_gateway/devicetype"
)

// ConnectionConfig carries everything a factory needs to open a channel to
// one device. Type selects the CLI handling behavior; the factories map it
// to a concrete driver.
type ConnectionConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Type     devicetype.DeviceType
	Timeout  time.Duration
}
