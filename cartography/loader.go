package cartography

import (
	"fmt"
	"os"

	"github.com/charlesren/ylog"
	"gopkg.in/yaml.v3"
)

// LoadDevices reads a device inventory file (yaml) and returns the device
// configurations declared under the "devices" key. Decoded with yaml.v3
// rather than viper: kvPairs keys like "flavourVersion" are case-sensitive
// and viper lowercases nested map keys.
func LoadDevices(path string) ([]DeviceConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device inventory %s: %w", path, err)
	}

	var inventory struct {
		Devices []DeviceConfig `yaml:"devices"`
	}
	if err := yaml.Unmarshal(raw, &inventory); err != nil {
		return nil, fmt.Errorf("parse device inventory %s: %w", path, err)
	}

	for i := range inventory.Devices {
		if inventory.Devices[i].ChannelConfigs == nil {
			inventory.Devices[i].ChannelConfigs = make(map[string]ChannelConfig)
		}
	}

	ylog.Infof("cartography", "loaded %d devices from %s", len(inventory.Devices), path)
	return inventory.Devices, nil
}
