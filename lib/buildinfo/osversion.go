package buildinfo

import (
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// GetOSVersion returns OS version with bitness, and the kernel with
// its architecture.  Either may be "" if it can't be found.
func GetOSVersion() (osVersion, osKernel string) {
	if platform, _, version, err := host.PlatformInformation(); err == nil && platform != "" {
		osVersion = platform
		if version != "" {
			osVersion += " " + version
		}
	}
	if version, err := host.KernelVersion(); err == nil && version != "" {
		osKernel = version
		if strings.Contains(osVersion, osKernel) {
			if deduped := strings.TrimSpace(strings.Replace(osVersion, osKernel, "", 1)); deduped != "" {
				osVersion = deduped
			}
		}
	}
	if arch, err := host.KernelArch(); err == nil && arch != "" {
		if strings.HasSuffix(arch, "64") && osVersion != "" {
			osVersion += " (64 bit)"
		}
		if osKernel != "" {
			osKernel += " (" + arch + ")"
		}
	}
	return osVersion, osKernel
}
