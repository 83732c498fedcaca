package handlers

import (
	"github.com/workshophub-dev/workshophub/internal/calendar"
	"github.com/workshophub-dev/workshophub/internal/geocoding"
)

var (
	calendarService *calendar.Service
	geocodingClient *geocoding.Client
)

// InitBridges wires the external service clients used by the calendar
// and geocoding handlers. Must be called before the router serves.
func InitBridges(cal *calendar.Service, geo *geocoding.Client) {
	calendarService = cal
	geocodingClient = geo
}
