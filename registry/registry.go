package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charlesren/ylog"

	"github.com/charlesren/cli_device_gateway/connection"
	"github.com/charlesren/cli_device_gateway/devicetype"
)

type DefaultRegistry struct {
	dialects map[devicetype.DeviceType]DialectMeta
	mu       sync.RWMutex
}

var _ Registry = (*DefaultRegistry)(nil)

func NewDefaultRegistry() Registry {
	return &DefaultRegistry{
		dialects: make(map[devicetype.DeviceType]DialectMeta),
	}
}

func (r *DefaultRegistry) Register(meta DialectMeta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.dialects[meta.Type]; exists {
		ylog.Warnf("registry", "dialect %s already registered", meta.Type)
		return fmt.Errorf("dialect '%s' already registered", meta.Type)
	}
	r.dialects[meta.Type] = meta
	ylog.Infof("registry", "registered new dialect: %s", meta.Type)
	return nil
}

// Discover matches exactly: the registered type must Equal the requested
// one, key and version both. Version-range matching is not this layer's job.
func (r *DefaultRegistry) Discover(
	deviceType devicetype.DeviceType,
	protocol connection.Protocol,
) (Dialect, error) {
	ylog.Debugf("registry", "discovering dialect: type=%s, protocol=%s", deviceType, protocol)

	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.dialects[deviceType]
	if !exists {
		ylog.Errorf("registry", "device type not found: %s", deviceType)
		return nil, fmt.Errorf("device type '%s' not found", deviceType)
	}

	for _, p := range meta.Protocols {
		if p.Protocol == protocol {
			return p.ImplFactory(), nil
		}
	}
	return nil, fmt.Errorf("no dialect for '%s' over protocol '%s'", deviceType, protocol)
}

// Types returns every registered device type ordered by DeviceType.Less, so
// listings and logs come out the same run after run.
func (r *DefaultRegistry) Types() []devicetype.DeviceType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]devicetype.DeviceType, 0, len(r.dialects))
	for t := range r.dialects {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Less(types[j])
	})
	return types
}
