package rooms

import (
	"time"

	"room-cli/api"
)

// State is one snapshot of the listing screen. It is never mutated; Reduce
// returns the next snapshot.
type State struct {
	Rooms         []api.Room
	Loading       bool
	Err           error
	Selected      time.Time
	Seq           uint64
	PickerVisible bool
}

type Event interface {
	event()
}

// FetchStarted begins a new request. Its sequence number is State.Seq after
// the event is applied.
type FetchStarted struct{}

type FetchSucceeded struct {
	Seq   uint64
	Rooms []api.Room
}

type FetchFailed struct {
	Seq uint64
	Err error
}

type DateSelected struct {
	Date *time.Time
}

type TimeSelected struct {
	Clock *time.Time
}

type PickerShown struct{}

type PickerDismissed struct{}

func (FetchStarted) event()    {}
func (FetchSucceeded) event()  {}
func (FetchFailed) event()     {}
func (DateSelected) event()    {}
func (TimeSelected) event()    {}
func (PickerShown) event()     {}
func (PickerDismissed) event() {}

func NewState(selected time.Time) State {
	return State{Rooms: []api.Room{}, Selected: selected}
}

// Reduce applies ev to s. Fetch results tagged with anything other than the
// latest sequence number are stale and dropped.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case FetchStarted:
		s.Seq++
		s.Loading = true
	case FetchSucceeded:
		if e.Seq != s.Seq {
			return s
		}
		s.Rooms = e.Rooms
		if s.Rooms == nil {
			s.Rooms = []api.Room{}
		}
		s.Loading = false
		s.Err = nil
	case FetchFailed:
		if e.Seq != s.Seq {
			return s
		}
		s.Loading = false
		s.Err = e.Err
	case DateSelected:
		s.Selected = ApplyDate(s.Selected, e.Date)
		s.PickerVisible = false
	case TimeSelected:
		s.Selected = ApplyTime(s.Selected, e.Clock)
		s.PickerVisible = false
	case PickerShown:
		s.PickerVisible = true
	case PickerDismissed:
		s.PickerVisible = false
	}
	return s
}

// Row is a room as the listing renders it.
type Row struct {
	Name      string `json:"room_name"`
	Location  string `json:"location"`
	Level     int    `json:"level"`
	HasLevel  bool   `json:"has_level"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

// Rows sorts the current rooms by level and resolves availability at the
// selected instant.
func Rows(s State) []Row {
	sorted := SortByLevel(s.Rooms)
	rows := make([]Row, 0, len(sorted))
	for _, room := range sorted {
		level, ok := Level(room.Location)
		rows = append(rows, Row{
			Name:      room.RoomName,
			Location:  room.Location,
			Level:     level,
			HasLevel:  ok,
			Capacity:  room.Capacity,
			Available: IsAvailable(room, s.Selected),
		})
	}
	return rows
}
