package calendar

import (
	"time"

	"github.com/workshophub-dev/workshophub/internal/models"
	gcal "google.golang.org/api/calendar/v3"
)

const (
	// WorkshopEventDuration is the fixed length of a workshop calendar event.
	WorkshopEventDuration = 2 * time.Hour
	// ActivityEventDuration is the fixed length of an activity calendar event.
	ActivityEventDuration = 1 * time.Hour
)

// BuildWorkshopEvent maps a workshop onto a calendar event. Start is the
// workshop's scheduled time, end is start plus the fixed duration, both
// expressed in UTC.
func BuildWorkshopEvent(workshop models.Workshop) *gcal.Event {
	return buildEvent(workshop.Title, workshop.Location, workshop.Description, workshop.DateTime, WorkshopEventDuration)
}

// BuildActivityEvent maps an activity onto a calendar event. The
// location comes from the parent workshop, which must be preloaded.
func BuildActivityEvent(activity models.Activity) *gcal.Event {
	return buildEvent(activity.Title, activity.Workshop.Location, activity.Description, activity.DateTime, ActivityEventDuration)
}

func buildEvent(summary, location, description string, start time.Time, duration time.Duration) *gcal.Event {
	startUTC := start.UTC()

	return &gcal.Event{
		Summary:     summary,
		Location:    location,
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: startUTC.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: startUTC.Add(duration).Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}
}
