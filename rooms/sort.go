// Package rooms holds the listing logic: level ordering, hourly availability
// and the selected-instant composer.
package rooms

import (
	"sort"
	"strconv"
	"strings"

	"room-cli/api"
)

// Level concatenates every decimal digit in location, in order, and parses the
// result. "Level 7" is 7 and "Tower 1, Level 2" is 12. ok is false when there
// are no digits or the number does not fit in an int.
func Level(location string) (int, bool) {
	var digits strings.Builder
	for _, r := range location {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	level, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return level, true
}

// SortByLevel returns a copy of rooms ordered by ascending level. Rooms
// without a level go last. Ties keep their input order.
func SortByLevel(rooms []api.Room) []api.Room {
	type keyed struct {
		room  api.Room
		level int
		ok    bool
	}
	items := make([]keyed, len(rooms))
	for i, room := range rooms {
		level, ok := Level(room.Location)
		items[i] = keyed{room: room, level: level, ok: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ok != items[j].ok {
			return items[i].ok
		}
		return items[i].level < items[j].level
	})

	sorted := make([]api.Room, len(items))
	for i, item := range items {
		sorted[i] = item.room
	}
	return sorted
}
