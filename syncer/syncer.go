package syncer

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/charlesren/ylog"
	"github.com/charlesren/zapix"

	"github.com/charlesren/cli_device_gateway/cartography"
)

// InventorySyncer keeps a full snapshot of the managed elements registered
// in Zabbix and pushes change events to subscribers. Each host's macros are
// folded into the device's cli channel kvPairs, where the device type
// factory reads them.
type InventorySyncer struct {
	client      *zapix.ZabbixClient
	devices     map[string]cartography.DeviceConfig
	version     int64
	subscribers []Subscriber
	mu          sync.RWMutex
	interval    time.Duration
	stop        chan struct{}
}

// Zabbix user macros carrying the cli channel settings.
const (
	macroFlavour        = "{$CLI_FLAVOUR}"
	macroFlavourVersion = "{$CLI_FLAVOUR_VERSION}"
)

func NewInventorySyncer(client *zapix.ZabbixClient, interval time.Duration) (*InventorySyncer, error) {
	if client == nil {
		return nil, fmt.Errorf("zabbix client cannot be nil")
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &InventorySyncer{
		client:   client,
		devices:  make(map[string]cartography.DeviceConfig),
		interval: interval,
		stop:     make(chan struct{}),
	}, nil
}

// Start runs the sync loop until Stop. An initial sync happens immediately
// so subscribers see the full inventory as creates.
func (s *InventorySyncer) Start() {
	if err := s.sync(); err != nil {
		ylog.Errorf("syncer", "initial sync failed: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.sync(); err != nil {
				ylog.Warnf("syncer", "sync failed: %v (retrying next tick)", err)
			}
		case <-s.stop:
			return
		}
	}
}

func (s *InventorySyncer) Stop() {
	close(s.stop)
}

func (s *InventorySyncer) sync() error {
	newDevices, err := s.fetchDevices()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.detectChanges(newDevices)
	if len(events) == 0 {
		return nil
	}

	s.devices = newDevices
	s.version++

	for i := range events {
		events[i].Version = s.version
	}

	ylog.Infof("syncer", "inventory version %d: %d changes", s.version, len(events))
	go s.notifyAll(events)
	return nil
}

// fetchDevices pulls the managed elements from Zabbix.
func (s *InventorySyncer) fetchDevices() (map[string]cartography.DeviceConfig, error) {
	response, err := s.client.DoRequest("host.get", map[string]interface{}{
		"output":           []string{"hostid", "host"},
		"selectMacros":     []string{"macro", "value"},
		"selectInterfaces": []string{"ip"},
	})
	if err != nil {
		return nil, err
	}

	result, ok := response.Result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected host.get result type %T", response.Result)
	}

	devices := make(map[string]cartography.DeviceConfig)
	for _, item := range result {
		data, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		device, err := parseDevice(data)
		if err != nil {
			ylog.Warnf("syncer", "skipping host: %v", err)
			continue
		}
		devices[device.ID] = device
	}
	return devices, nil
}

// parseDevice maps one host.get entry to a device configuration. Hosts
// without a cli flavour macro still get a cli channel; the device type
// factory resolves those to the default instance.
func parseDevice(data map[string]interface{}) (cartography.DeviceConfig, error) {
	hostID, ok := data["hostid"].(string)
	if !ok || hostID == "" {
		return cartography.DeviceConfig{}, fmt.Errorf("host entry missing hostid")
	}

	var ip string
	if ifaces, ok := data["interfaces"].([]interface{}); ok && len(ifaces) > 0 {
		if iface, ok := ifaces[0].(map[string]interface{}); ok {
			ip, _ = iface["ip"].(string)
		}
	}

	kvPairs := make(map[string]string)
	if macros, ok := data["macros"].([]interface{}); ok {
		for _, m := range macros {
			macro, ok := m.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := macro["macro"].(string)
			value, _ := macro["value"].(string)
			switch name {
			case macroFlavour:
				kvPairs["flavour"] = value
			case macroFlavourVersion:
				kvPairs["flavourVersion"] = value
			}
		}
	}

	return cartography.DeviceConfig{
		ID: hostID,
		IP: ip,
		ChannelConfigs: map[string]cartography.ChannelConfig{
			cartography.ChannelCLI: {KvPairs: kvPairs},
		},
	}, nil
}

func (s *InventorySyncer) detectChanges(newDevices map[string]cartography.DeviceConfig) []DeviceChangeEvent {
	var events []DeviceChangeEvent

	for oldID, oldDevice := range s.devices {
		if newDevice, exists := newDevices[oldID]; !exists {
			events = append(events, DeviceChangeEvent{
				Type:   DeviceDelete,
				Device: oldDevice,
			})
		} else if !reflect.DeepEqual(oldDevice, newDevice) {
			events = append(events, DeviceChangeEvent{
				Type:   DeviceUpdate,
				Device: newDevice,
			})
		}
	}

	for newID, newDevice := range newDevices {
		if _, exists := s.devices[newID]; !exists {
			events = append(events, DeviceChangeEvent{
				Type:   DeviceCreate,
				Device: newDevice,
			})
		}
	}

	return events
}

func (s *InventorySyncer) notifyAll(events []DeviceChangeEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range events {
		for _, sub := range s.subscribers {
			select {
			case sub <- event:
			default:
				ylog.Warnf("syncer", "subscriber channel full, dropped event for device %s", event.Device.ID)
			}
		}
	}
}

// Snapshot returns a copy of the current inventory.
func (s *InventorySyncer) Snapshot() map[string]cartography.DeviceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]cartography.DeviceConfig, len(s.devices))
	for k, v := range s.devices {
		snapshot[k] = v
	}
	return snapshot
}

func (s *InventorySyncer) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *InventorySyncer) Subscribe() (<-chan DeviceChangeEvent, func()) {
	ch := make(chan DeviceChangeEvent, 100)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, Subscriber(ch))
	s.mu.Unlock()

	return ch, func() {
		s.unsubscribe(ch)
	}
}

func (s *InventorySyncer) unsubscribe(ch chan DeviceChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subscribers {
		if sub == Subscriber(ch) {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}
