package cartography

// ChannelCLI is the channel configuration section consulted when selecting
// the CLI handling implementation for a device.
const ChannelCLI = "cli"

// ChannelConfig holds the key/value settings for one communication channel
// to a managed device.
type ChannelConfig struct {
	KvPairs map[string]string `yaml:"kvPairs"`
}

// DeviceConfig describes one managed network element as loaded from the
// inventory. ChannelConfigs maps channel name (e.g. "cli") to that
// channel's settings.
type DeviceConfig struct {
	ID             string                   `yaml:"id"`
	IP             string                   `yaml:"ip"`
	ChannelConfigs map[string]ChannelConfig `yaml:"channelConfigs"`
}

// Channel returns the named channel's settings. A channel that is not
// configured yields a zero ChannelConfig, whose KvPairs lookups all miss.
func (d DeviceConfig) Channel(name string) ChannelConfig {
	return d.ChannelConfigs[name]
}
