// internal/domain/models/activity.go
package models

import "fmt"

// ActivityType identifies one of the two independent roster partition
// schemes. A member may hold at most one party slot per activity type;
// the same member can appear in both a raid party and a conquest party.
type ActivityType string

const (
	ActivityRaid     ActivityType = "raid"
	ActivityConquest ActivityType = "conquest"
)

// ActivityTypes returns all valid activity types in a stable order.
func ActivityTypes() []ActivityType {
	return []ActivityType{ActivityRaid, ActivityConquest}
}

// ParseActivityType validates a raw string from a request or document.
func ParseActivityType(s string) (ActivityType, error) {
	switch ActivityType(s) {
	case ActivityRaid:
		return ActivityRaid, nil
	case ActivityConquest:
		return ActivityConquest, nil
	}
	return "", fmt.Errorf("unknown activity type %q", s)
}

// Valid reports whether t is one of the defined activity types.
func (t ActivityType) Valid() bool {
	return t == ActivityRaid || t == ActivityConquest
}
