package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"room-cli/api"
	"room-cli/storage"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func scannerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scanner",
		Short: "Scanner screen (manual room codes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Scanner Screen")
			fmt.Fprintln(out, "Camera scanning is not available. Record a room code with 'rooms scanner log <code>'.")
			fmt.Fprintln(out, "Back to Room Listing: rooms list")
			return nil
		},
	}

	cmd.AddCommand(scannerLogCmd())
	cmd.AddCommand(scannerHistoryCmd())
	cmd.AddCommand(scannerClearCmd())
	return cmd
}

func scannerLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <code>",
		Short: "Record a room code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.TrimSpace(args[0])
			if code == "" {
				return fmt.Errorf("room code is required")
			}

			roomName := ""
			fetched, err := client.FetchRooms(commandContext(cmd))
			if err != nil {
				log.Warn().Str("cause", api.CauseOf(err)).Str("code", code).Msg("Recording scan without room lookup")
			} else if room, ok := matchRoom(fetched, code); ok {
				roomName = room.RoomName
			}

			db, err := storage.OpenScansDB()
			if err != nil {
				return err
			}
			defer db.Close()

			scan := storage.NewScan(code, roomName, time.Now())
			if err := storage.AddScan(db, scan); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputJSON {
				return writeJSON(out, scan)
			}
			if roomName == "" {
				fmt.Fprintf(out, "Recorded %s (unknown room).\n", scan.Code)
				return nil
			}
			fmt.Fprintf(out, "Recorded %s (%s).\n", scan.Code, roomName)
			return nil
		},
	}

	return cmd
}

func scannerHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded room codes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := storage.OpenScansDB()
			if err != nil {
				return err
			}
			defer db.Close()

			scans, err := storage.ListScans(db, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputJSON {
				return writeJSON(out, scans)
			}
			if len(scans) == 0 {
				fmt.Fprintln(out, "No scans recorded.")
				return nil
			}

			writer := tabwriter.NewWriter(out, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "SCANNED AT\tCODE\tROOM")
			}
			for _, scan := range scans {
				room := scan.RoomName
				if room == "" {
					room = "-"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\n", scanTimeLabel(scan.ScannedAt), scan.Code, room)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum scans to show (0 for all)")
	return cmd
}

func scannerClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded room codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := storage.OpenScansDB()
			if err != nil {
				return err
			}
			defer db.Close()

			removed, err := storage.ClearScans(db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d scans.\n", removed)
			return nil
		},
	}

	return cmd
}

func scanTimeLabel(stamp string) string {
	parsed, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		return stamp
	}
	return parsed.Local().Format("2006-01-02 15:04")
}
