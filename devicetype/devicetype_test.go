package devicetype

import (
	"sort"
	"testing"

	"github.com/charlesren/cli_device_gateway/cartography"
)

func cliDevice(kvPairs map[string]string) cartography.DeviceConfig {
	return cartography.DeviceConfig{
		ID: "dev001",
		IP: "192.168.1.1",
		ChannelConfigs: map[string]cartography.ChannelConfig{
			cartography.ChannelCLI: {KvPairs: kvPairs},
		},
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  DeviceType
		equal bool
	}{
		{"identical", New("ios", "15.2"), New("ios", "15.2"), true},
		{"different version", New("ios", "15.2"), New("ios", "16.9"), false},
		{"different name", New("ios", "15.2"), New("junos", "15.2"), false},
		{"case sensitive", New("ios", "15.2"), New("IOS", "15.2"), false},
		{"wildcard only equals wildcard", New("ios", VersionAny), New("ios", "15.2"), false},
		{"defaults", Default(), Default(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			if got := tt.b.Equal(tt.a); got != tt.equal {
				t.Errorf("Equal() not symmetric: %v vs %v", tt.a, tt.b)
			}
			if got := tt.a.NotEqual(tt.b); got == tt.equal {
				t.Errorf("NotEqual() must negate Equal()")
			}
		})
	}
}

func TestEqualReflexive(t *testing.T) {
	for _, v := range []DeviceType{New("ios", "15.2"), New("", ""), Default()} {
		if !v.Equal(v) {
			t.Errorf("%v must equal itself", v)
		}
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b DeviceType
		less bool
	}{
		{"name dominates version", New("a", "2"), New("b", "1"), true},
		{"name dominates reversed", New("b", "1"), New("a", "2"), false},
		{"version tie-break", New("a", "1"), New("a", "2"), true},
		{"version tie-break reversed", New("a", "2"), New("a", "1"), false},
		{"equal values", New("a", "1"), New("a", "1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.less {
				t.Errorf("Less() = %v, want %v", got, tt.less)
			}
		})
	}
}

func TestOrderTrichotomy(t *testing.T) {
	values := []DeviceType{
		New("a", "1"),
		New("a", "2"),
		New("b", "1"),
		New("ios", "15.2"),
		New("ios", VersionAny),
		Default(),
	}

	for _, a := range values {
		for _, b := range values {
			count := 0
			if a.Equal(b) {
				count++
			}
			if a.Less(b) {
				count++
			}
			if b.Less(a) {
				count++
			}
			if count != 1 {
				t.Errorf("trichotomy violated for %v vs %v: %d relations hold", a, b, count)
			}
		}
	}
}

func TestOrderTransitive(t *testing.T) {
	a, b, c := New("a", "1"), New("a", "2"), New("b", "1")
	if !a.Less(b) || !b.Less(c) {
		t.Fatal("fixture must be ascending")
	}
	if !a.Less(c) {
		t.Error("Less must be transitive")
	}
}

func TestDerivedComparisons(t *testing.T) {
	values := []DeviceType{
		New("a", "1"),
		New("a", "2"),
		New("b", "1"),
		Default(),
	}

	for _, a := range values {
		for _, b := range values {
			if a.Greater(b) != b.Less(a) {
				t.Errorf("Greater(%v, %v) must mirror Less", a, b)
			}
			if a.LessOrEqual(b) != !b.Less(a) {
				t.Errorf("LessOrEqual(%v, %v) inconsistent with Less", a, b)
			}
			if a.GreaterOrEqual(b) != !a.Less(b) {
				t.Errorf("GreaterOrEqual(%v, %v) inconsistent with Less", a, b)
			}
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		value DeviceType
		want  string
	}{
		{New("ios", "15.2"), "{ios: 15.2}"},
		{New("junos", VersionAny), "{junos: *}"},
		{Default(), "{unknown: *}"},
		{New("", ""), "{: }"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  cartography.DeviceConfig
		want DeviceType
	}{
		{
			name: "flavour and version",
			cfg:  cliDevice(map[string]string{"flavour": "ios", "flavourVersion": "15.2"}),
			want: New("ios", "15.2"),
		},
		{
			name: "flavour without version",
			cfg:  cliDevice(map[string]string{"flavour": "junos"}),
			want: New("junos", VersionAny),
		},
		{
			name: "empty cli section",
			cfg:  cliDevice(map[string]string{}),
			want: Default(),
		},
		{
			name: "version without flavour is ignored",
			cfg:  cliDevice(map[string]string{"flavourVersion": "15.2"}),
			want: Default(),
		},
		{
			name: "no cli channel",
			cfg:  cartography.DeviceConfig{ID: "dev002"},
			want: Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromConfig(tt.cfg)
			if !got.Equal(tt.want) {
				t.Errorf("FromConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromConfigMatchesConstructor(t *testing.T) {
	fromConfig := FromConfig(cliDevice(map[string]string{"flavour": "ios", "flavourVersion": "15.2"}))
	constructed := New("ios", "15.2")

	if !fromConfig.Equal(constructed) {
		t.Error("identical pairs must compare equal regardless of construction path")
	}
	if fromConfig.Less(constructed) || constructed.Less(fromConfig) {
		t.Error("equal values must not order before one another")
	}
}

func TestDefaultInstances(t *testing.T) {
	first := FromConfig(cliDevice(nil))
	second := FromConfig(cliDevice(map[string]string{}))

	if !first.Equal(second) {
		t.Error("independently derived defaults must be equal")
	}
	if first.NotEqual(Default()) {
		t.Error("derived default must equal Default()")
	}
	if Default().Version() != VersionAny {
		t.Errorf("default version = %q, want %q", Default().Version(), VersionAny)
	}
}

func TestUsableAsMapAndSortKey(t *testing.T) {
	m := map[DeviceType]string{
		New("ios", "15.2"): "ios dialect",
		Default():          "fallback",
	}
	if m[New("ios", "15.2")] != "ios dialect" {
		t.Error("map lookup through an independently built key failed")
	}

	keys := []DeviceType{
		New("vrp", "8"),
		New("ios", VersionAny),
		New("ios", "15.2"),
		New("junos", "20.4"),
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	// "*" sorts before digits bytewise
	want := []DeviceType{
		New("ios", VersionAny),
		New("ios", "15.2"),
		New("junos", "20.4"),
		New("vrp", "8"),
	}
	for i := range want {
		if keys[i].NotEqual(want[i]) {
			t.Errorf("sorted[%d] = %v, want %v", i, keys[i], want[i])
		}
	}
}
