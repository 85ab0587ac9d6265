package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"room-cli/api"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// parseDateInput returns nil for an empty input so the selected date is left alone.
func parseDateInput(input string, now time.Time) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	loc := now.Location()
	var parsed time.Time
	switch strings.ToLower(input) {
	case "today":
		parsed = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		parsed = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	default:
		var err error
		parsed, err = time.ParseInLocation("2006-01-02", input, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
		}
	}
	return &parsed, nil
}

func parseClock(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	parsed, err := time.Parse("15:04", input)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q (expected HH:MM)", input)
	}
	return &parsed, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func availabilityLabel(available, glyphs bool) string {
	switch {
	case glyphs && available:
		return "✓"
	case glyphs:
		return "✗"
	case available:
		return "yes"
	default:
		return "no"
	}
}

func levelLabel(level int, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d", level)
}

func roomCode(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// matchRoom finds a room by its name or its dashed code, ignoring case.
func matchRoom(list []api.Room, code string) (api.Room, bool) {
	needle := strings.TrimSpace(code)
	for _, room := range list {
		if strings.EqualFold(room.RoomName, needle) || roomCode(room.RoomName) == strings.ToLower(needle) {
			return room, true
		}
	}
	return api.Room{}, false
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
