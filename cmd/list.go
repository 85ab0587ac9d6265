package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"room-cli/rooms"

	"github.com/spf13/cobra"
)

type listOptions struct {
	Date          string
	Time          string
	AvailableOnly bool
}

type ListingOutput struct {
	Date  string      `json:"date"`
	Hour  string      `json:"hour"`
	Rooms []rooms.Row `json:"rooms"`
	Error string      `json:"error,omitempty"`
}

func listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"listing"},
		Short:   "List rooms sorted by level with availability at the chosen hour",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Date (YYYY-MM-DD, today, tomorrow); defaults to today")
	cmd.Flags().StringVar(&opts.Time, "time", "", "Time (HH:MM); defaults to now or default_time from config")
	cmd.Flags().BoolVar(&opts.AvailableOnly, "available", false, "Only show rooms available at the chosen hour")
	return cmd
}

func selectedInstant(now time.Time, opts listOptions) (time.Time, error) {
	date, err := parseDateInput(opts.Date, now)
	if err != nil {
		return time.Time{}, err
	}
	clockInput := opts.Time
	if clockInput == "" {
		clockInput = cfg.DefaultTime
	}
	clock, err := parseClock(clockInput)
	if err != nil {
		return time.Time{}, err
	}
	return rooms.ApplyTime(rooms.ApplyDate(now, date), clock), nil
}

func runList(cmd *cobra.Command, opts listOptions) error {
	selected, err := selectedInstant(time.Now(), opts)
	if err != nil {
		return err
	}

	state := rooms.NewState(selected)
	state = rooms.Reduce(state, rooms.FetchStarted{})
	seq := state.Seq

	fetched, err := client.FetchRooms(commandContext(cmd))
	if err != nil {
		state = rooms.Reduce(state, rooms.FetchFailed{Seq: seq, Err: err})
	} else {
		state = rooms.Reduce(state, rooms.FetchSucceeded{Seq: seq, Rooms: fetched})
	}

	output := buildListing(state, opts.AvailableOnly)
	out := cmd.OutOrStdout()
	switch {
	case outputJSON:
		if err := writeJSON(out, output); err != nil {
			return err
		}
	case outputCompact:
		fmt.Fprintln(out, renderCompactListing(output))
	default:
		if err := renderListing(out, output, isTerminal(out)); err != nil {
			return err
		}
	}
	return state.Err
}

func buildListing(state rooms.State, availableOnly bool) ListingOutput {
	rows := rooms.Rows(state)
	if availableOnly {
		filtered := make([]rooms.Row, 0, len(rows))
		for _, row := range rows {
			if row.Available {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	output := ListingOutput{
		Date:  state.Selected.Format("2006-01-02"),
		Hour:  rooms.HourKey(state.Selected),
		Rooms: rows,
	}
	if state.Err != nil {
		output.Error = state.Err.Error()
	}
	return output
}

func renderListing(w io.Writer, output ListingOutput, glyphs bool) error {
	fmt.Fprintf(w, "Date: %s  Hour: %s\n", output.Date, output.Hour)
	if len(output.Rooms) == 0 {
		fmt.Fprintln(w, "No rooms.")
		return nil
	}

	writer := tabwriter.NewWriter(w, 2, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "ROOM\tLEVEL\tCAPACITY\tAVAILABLE")
	for _, row := range output.Rooms {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", row.Name, levelLabel(row.Level, row.HasLevel), row.Capacity, availabilityLabel(row.Available, glyphs))
	}
	return writer.Flush()
}

func renderCompactListing(output ListingOutput) string {
	if len(output.Rooms) == 0 {
		return fmt.Sprintf("%s %s: no rooms", output.Date, output.Hour)
	}
	parts := make([]string, 0, len(output.Rooms))
	for _, row := range output.Rooms {
		parts = append(parts, fmt.Sprintf("%s %s", row.Name, availabilityLabel(row.Available, true)))
	}
	return strings.Join(parts, " | ")
}
