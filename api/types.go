package api

import (
	"bytes"
	"strconv"
)

type Room struct {
	RoomName     string          `json:"room_name"`
	Location     string          `json:"location"`
	Capacity     int             `json:"capacity"`
	Availability map[string]Flag `json:"availability"`
}

// Flag is one hourly availability value. Only a JSON number equal to 1 means
// available. Strings, booleans and null decode to FlagInvalid instead of
// failing the whole document.
type Flag int

const (
	FlagInvalid     Flag = -1
	FlagUnavailable Flag = 0
	FlagAvailable   Flag = 1
)

func (f *Flag) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*f = FlagInvalid
		return nil
	}
	switch {
	case value == 1:
		*f = FlagAvailable
	case value == 0:
		*f = FlagUnavailable
	default:
		*f = FlagInvalid
	}
	return nil
}

func (f Flag) Available() bool {
	return f == FlagAvailable
}
