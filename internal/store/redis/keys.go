package redis

import (
	"fmt"
	"strings"
)

const (
	// KeyPrefixUsage is the prefix for launch counters
	KeyPrefixUsage = "lc:usage:"
	// KeyPrefixLastUsed is the prefix for last-launch timestamps
	KeyPrefixLastUsed = "lc:usage:last:"
	// KeyAllUsage is the set of every name ever counted
	KeyAllUsage = "lc:usage:all"
)

// UsageKey returns the counter key for a shortcut name
func UsageKey(name string) string {
	return KeyPrefixUsage + name
}

// LastUsedKey returns the timestamp key for a shortcut name
func LastUsedKey(name string) string {
	return KeyPrefixLastUsed + name
}

// AllUsageKey returns the key for the set of counted names
func AllUsageKey() string {
	return KeyAllUsage
}

// ExtractName extracts the shortcut name from a counter key
func ExtractName(key string) (string, error) {
	if strings.HasPrefix(key, KeyPrefixLastUsed) || len(key) <= len(KeyPrefixUsage) || !strings.HasPrefix(key, KeyPrefixUsage) {
		return "", fmt.Errorf("invalid usage key: %s", key)
	}
	return key[len(KeyPrefixUsage):], nil
}
