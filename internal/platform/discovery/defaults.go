// Package discovery centralizes in-network service address conventions.
package discovery

import (
	"strconv"
	"strings"
)

// ServiceDrill is the drill gRPC service identity.
const ServiceDrill = "drill"

var grpcPorts = map[string]int{
	ServiceDrill: 8090,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	port, ok := grpcPorts[strings.TrimSpace(service)]
	if !ok || port <= 0 {
		return ""
	}
	return strings.TrimSpace(service) + ":" + strconv.Itoa(port)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}
