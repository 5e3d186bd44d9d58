package version

import (
	"os"
	"strings"
	"sync"
)

var (
	// buildVersion is set at link time: -ldflags "-X github.com/otterize/logging-reader-provisioner/shared/version.buildVersion=1.2.3"
	buildVersion string
	version      = VersionLocal
	once         sync.Once
)

const VersionLocal = "0-local"

// Version returns the version stamped at link time, else the contents of a ./version file shipped next to
// the binary, else VersionLocal.
func Version() string {
	once.Do(func() {
		if buildVersion != "" {
			version = buildVersion
			return
		}

		data, err := os.ReadFile("./version")
		if err == nil && len(strings.TrimSpace(string(data))) > 0 {
			version = strings.TrimSpace(string(data))
		}
	})

	return version
}
