package devicetype

import (
	"github.com/charlesren/cli_device_gateway/cartography"
)

// DeviceType identifies the CLI dialect ("flavour") and version of a managed
// network device. The gateway keys its dialect registry on this value, so it
// must compare and order consistently. Immutable once constructed.
type DeviceType struct {
	name    string
	version string
}

// VersionAny marks a device type whose flavour version is unspecified.
const VersionAny = "*"

// kvPairs keys read from the cli channel configuration
const (
	keyFlavour        = "flavour"
	keyFlavourVersion = "flavourVersion"
)

var defaultInstance = DeviceType{name: "unknown", version: VersionAny}

// New builds a device type from explicit flavour name and version.
func New(name, version string) DeviceType {
	return DeviceType{name: name, version: version}
}

// Default returns the device type used when configuration names no flavour.
func Default() DeviceType {
	return defaultInstance
}

func (t DeviceType) Name() string    { return t.name }
func (t DeviceType) Version() string { return t.version }

// Equal reports exact match on both name and version. Case-sensitive, no
// normalization, no wildcard matching ("*" only equals "*").
func (t DeviceType) Equal(other DeviceType) bool {
	return t.name == other.name && t.version == other.version
}

func (t DeviceType) NotEqual(other DeviceType) bool {
	return !t.Equal(other)
}

// Less orders by name, then by version when names match. With Equal this
// forms a total order: for any two values exactly one of Equal, Less,
// other.Less holds.
func (t DeviceType) Less(other DeviceType) bool {
	if t.name < other.name {
		return true
	}
	if other.name < t.name {
		return false
	}
	return t.version < other.version
}

// The remaining comparisons derive from Less. Keep them derived: independent
// hand-written versions drift out of agreement.

func (t DeviceType) Greater(other DeviceType) bool {
	return other.Less(t)
}

func (t DeviceType) LessOrEqual(other DeviceType) bool {
	return !other.Less(t)
}

func (t DeviceType) GreaterOrEqual(other DeviceType) bool {
	return !t.Less(other)
}

// String renders "{name: version}". This is the only textual form the
// gateway emits for a device type; there is no parser for it.
func (t DeviceType) String() string {
	return "{" + t.name + ": " + t.version + "}"
}

// FromConfig derives the device type from the cli channel of a device
// configuration. When the channel sets "flavour", that value becomes the
// name and "flavourVersion" (or VersionAny when unset) the version; when it
// does not, the default instance is returned and "flavourVersion" is
// ignored. A device with no cli channel at all resolves the same way as an
// empty one.
func FromConfig(cfg cartography.DeviceConfig) DeviceType {
	kv := cfg.Channel(cartography.ChannelCLI).KvPairs

	name, ok := kv[keyFlavour]
	if !ok {
		return defaultInstance
	}
	version := VersionAny
	if v, ok := kv[keyFlavourVersion]; ok {
		version = v
	}
	return DeviceType{name: name, version: version}
}
