package config

import "time"

const defaultPort = 8080

var defaultCarrier = Carrier{
	Language: "EN",
	Timeout:  30 * time.Second,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultCarrier returns the default carrier client settings.
func DefaultCarrier() Carrier {
	return defaultCarrier
}
