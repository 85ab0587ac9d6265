package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"room-cli/api"
	"room-cli/rooms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPayload = `[
  {"room_name":"Sky Room","location":"Level 7","capacity":10,"availability":{"09:00":1,"10:00":0}},
  {"room_name":"Ocean Room","location":"Level 10","capacity":4,"availability":{"09:00":0}},
  {"room_name":"Garden","location":"Level 2","capacity":8,"availability":{"09:00":1}}
]`

func useTestServer(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	previous := client
	client = api.NewClient()
	client.Endpoint = srv.URL
	t.Cleanup(func() { client = previous })
}

func resetOutputFlags(t *testing.T) {
	t.Helper()
	outputJSON, outputCompact = false, false
	cfg = Config{}
	t.Cleanup(func() {
		outputJSON, outputCompact = false, false
		cfg = Config{}
	})
}

func runListCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := listCmd()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListTable(t *testing.T) {
	resetOutputFlags(t)
	useTestServer(t, http.StatusOK, listingPayload)

	out, err := runListCommand(t, "--date", "2026-10-14", "--time", "09:15")
	require.NoError(t, err)

	assert.Contains(t, out, "Date: 2026-10-14  Hour: 09:00")
	assert.Contains(t, out, "ROOM")
	garden := bytes.Index([]byte(out), []byte("Garden"))
	sky := bytes.Index([]byte(out), []byte("Sky Room"))
	ocean := bytes.Index([]byte(out), []byte("Ocean Room"))
	assert.True(t, garden < sky && sky < ocean, "rooms should be ordered by level:\n%s", out)
}

func TestListJSON(t *testing.T) {
	resetOutputFlags(t)
	outputJSON = true
	useTestServer(t, http.StatusOK, listingPayload)

	out, err := runListCommand(t, "--date", "2026-10-14", "--time", "10:00")
	require.NoError(t, err)

	var output ListingOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Equal(t, "2026-10-14", output.Date)
	assert.Equal(t, "10:00", output.Hour)
	assert.Empty(t, output.Error)
	require.Len(t, output.Rooms, 3)
	assert.Equal(t, "Garden", output.Rooms[0].Name)
	for _, row := range output.Rooms {
		assert.False(t, row.Available, row.Name)
	}
}

func TestListAvailableOnlyCompact(t *testing.T) {
	resetOutputFlags(t)
	outputCompact = true
	useTestServer(t, http.StatusOK, listingPayload)

	out, err := runListCommand(t, "--date", "2026-10-14", "--time", "09:00", "--available")
	require.NoError(t, err)
	assert.Equal(t, "Garden ✓ | Sky Room ✓\n", out)
}

func TestListServerError(t *testing.T) {
	resetOutputFlags(t)
	useTestServer(t, http.StatusInternalServerError, "oops")

	out, err := runListCommand(t, "--date", "2026-10-14", "--time", "09:00")
	require.Error(t, err)
	assert.Equal(t, api.FetchFailedMessage, err.Error())
	assert.Contains(t, out, "No rooms.")
}

func TestListServerErrorJSON(t *testing.T) {
	resetOutputFlags(t)
	outputJSON = true
	useTestServer(t, http.StatusInternalServerError, "oops")

	out, err := runListCommand(t, "--date", "2026-10-14")
	require.Error(t, err)

	var output ListingOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Equal(t, api.FetchFailedMessage, output.Error)
	assert.Empty(t, output.Rooms)
}

func TestListRejectsBadInput(t *testing.T) {
	resetOutputFlags(t)
	useTestServer(t, http.StatusOK, listingPayload)

	_, err := runListCommand(t, "--date", "14/10/2026")
	assert.EqualError(t, err, `invalid date "14/10/2026" (expected YYYY-MM-DD)`)

	_, err = runListCommand(t, "--time", "9am")
	assert.EqualError(t, err, `invalid time "9am" (expected HH:MM)`)
}

func TestSelectedInstant(t *testing.T) {
	resetOutputFlags(t)
	now := time.Date(2026, time.October, 14, 13, 42, 7, 0, time.UTC)

	t.Run("no flags keeps now", func(t *testing.T) {
		got, err := selectedInstant(now, listOptions{})
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("date only keeps clock", func(t *testing.T) {
		got, err := selectedInstant(now, listOptions{Date: "2026-12-01"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.December, 1, 13, 42, 7, 0, time.UTC), got)
	})

	t.Run("time only keeps date", func(t *testing.T) {
		got, err := selectedInstant(now, listOptions{Time: "08:30"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.October, 14, 8, 30, 0, 0, time.UTC), got)
	})

	t.Run("config default time", func(t *testing.T) {
		cfg = Config{DefaultTime: "11:00"}
		got, err := selectedInstant(now, listOptions{Date: "tomorrow"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.October, 15, 11, 0, 0, 0, time.UTC), got)
	})
}

func TestRenderListingPlainLabels(t *testing.T) {
	var buf bytes.Buffer
	output := ListingOutput{
		Date: "2026-10-14",
		Hour: "09:00",
		Rooms: []rooms.Row{
			{Name: "Sky Room", Level: 7, HasLevel: true, Capacity: 10, Available: true},
			{Name: "Lobby", Capacity: 2},
		},
	}
	require.NoError(t, renderListing(&buf, output, false))
	out := buf.String()
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "no")
	assert.Contains(t, out, "-")
	assert.NotContains(t, out, "✓")
}
