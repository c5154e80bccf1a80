package hostlog

import "strings"

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "tarmac"

// RuntimeConfig carries configuration that is used during creation of host backends.
type RuntimeConfig struct {
	// Namespace is the function namespace used to scope host interactions.
	Namespace string
}

// WithDefaults returns a copy of the configuration with empty fields set to their defaults.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	return c
}

// Platform identifies the kind of runtime the host is running on.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformDesktop
	PlatformHeadless
	PlatformAndroid
	PlatformIOS
	PlatformWeb
)

var platformNames = map[Platform]string{
	PlatformUnknown:  "unknown",
	PlatformDesktop:  "desktop",
	PlatformHeadless: "headless",
	PlatformAndroid:  "android",
	PlatformIOS:      "ios",
	PlatformWeb:      "web",
}

// ParsePlatform maps a host supplied platform name to a Platform, ignoring case.
// Unrecognized names map to PlatformUnknown.
func ParsePlatform(name string) Platform {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range platformNames {
		if n == name {
			return p
		}
	}
	return PlatformUnknown
}

func (p Platform) String() string {
	if n, ok := platformNames[p]; ok {
		return n
	}
	return platformNames[PlatformUnknown]
}

// Restricted reports whether the platform limits tag and log line lengths.
func (p Platform) Restricted() bool {
	return p == PlatformAndroid
}
