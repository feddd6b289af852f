package syncer

import (
	"github.com/charlesren/cli_device_gateway/cartography"
)

type ChangeType uint8

const (
	DeviceCreate ChangeType = iota + 1
	DeviceUpdate
	DeviceDelete
)

type DeviceChangeEvent struct {
	Type    ChangeType
	Device  cartography.DeviceConfig
	Version int64 // inventory version the event belongs to
}

type Subscriber chan<- DeviceChangeEvent
