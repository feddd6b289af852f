package connection

import (
	"github.com/charlesren/cli_device_gateway/devicetype"
)

// scrapliPlatforms maps a CLI flavour name to the scrapligo platform
// definition that drives it. Version is deliberately not part of the key:
// scrapligo platform definitions cover all versions of a dialect, and the
// gateway does no version-range matching.
var scrapliPlatforms = map[string]string{
	"ios":     "cisco_iosxe",
	"iosxr":   "cisco_iosxr",
	"nxos":    "cisco_nxos",
	"junos":   "juniper_junos",
	"eos":     "arista_eos",
	"sros":    "nokia_sros",
	"vrp":     "huawei_vrp",
	"comware": "h3c_comware",
}

// ScrapliPlatform resolves the scrapligo platform for a device type. ok is
// false for flavours scrapligo does not model (including the default
// instance), which the caller should route to the plain ssh driver.
func ScrapliPlatform(t devicetype.DeviceType) (string, bool) {
	p, ok := scrapliPlatforms[t.Name()]
	return p, ok
}
