// Package instance names the running process in logs.
package instance

import "os"

const fallbackID = "local"

// GetID returns SALESBOARD_INSTANCE_ID, then the platform dyno name, then
// the hostname.
func GetID() string {
	for _, key := range []string{"SALESBOARD_INSTANCE_ID", "DYNO"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return fallbackID
}
