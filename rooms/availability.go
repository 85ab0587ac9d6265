package rooms

import (
	"fmt"
	"time"

	"room-cli/api"
)

// HourKey formats the hour of at, in at's own location, as "HH:00".
func HourKey(at time.Time) string {
	return fmt.Sprintf("%02d:00", at.Hour())
}

// IsAvailable reports whether room is flagged available for the hour of at.
// A missing hour is not an error; it just means unavailable.
func IsAvailable(room api.Room, at time.Time) bool {
	flag, ok := room.Availability[HourKey(at)]
	if !ok {
		return false
	}
	return flag.Available()
}
