// Package utils provides small helpers shared by the transport layer:
// the resty client wrapper and the TrackingID generator.
package utils
