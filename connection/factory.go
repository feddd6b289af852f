package connection

import (
	"github.com/charlesren/ylog"
)

// NewDriver opens a driver for the device, preferring a scrapligo platform
// when the flavour has one and falling back to plain ssh otherwise.
func NewDriver(config ConnectionConfig) (ProtocolDriver, error) {
	if _, ok := ScrapliPlatform(config.Type); ok {
		return NewScrapliFactory().Create(config)
	}
	ylog.Infof("connection", "flavour %s has no scrapli platform, using ssh driver", config.Type)
	return NewSSHFactory().Create(config)
}
