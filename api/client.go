package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultEndpoint  = "https://rooms.example.com/room-availability.json"
	DefaultTimeout   = 15 * time.Second
	defaultUserAgent = "room-cli/1.0"
)

type Client struct {
	HTTP      *http.Client
	Endpoint  string
	UserAgent string
}

func NewClient() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: DefaultTimeout},
		Endpoint:  DefaultEndpoint,
		UserAgent: defaultUserAgent,
	}
}

// FetchRooms performs a single GET against the endpoint. It never retries and
// keeps nothing between calls; on failure no rooms are returned.
func (c *Client) FetchRooms(ctx context.Context) ([]Room, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, newFetchError(KindNetwork, err)
	}

	log.Debug().Str("url", req.URL.String()).Msg("Fetching rooms")

	body, err := c.doRaw(req)
	if err != nil {
		log.Warn().Str("cause", CauseOf(err)).Str("url", req.URL.String()).Msg("Room request failed")
		return nil, err
	}

	rooms, err := decodeRooms(body)
	if err != nil {
		log.Warn().Err(err).Msg("Room payload could not be decoded")
		return nil, newFetchError(KindParse, err)
	}

	log.Debug().Int("rooms", len(rooms)).Msg("Fetched rooms")
	return rooms, nil
}

func (c *Client) newRequest(ctx context.Context) (*http.Request, error) {
	endpoint := strings.TrimSpace(c.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) doRaw(req *http.Request) ([]byte, error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, newFetchError(KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, newFetchError(KindStatus, fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(body))))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newFetchError(KindNetwork, fmt.Errorf("read body: %w", err))
	}
	return body, nil
}

func decodeRooms(body []byte) ([]Room, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	var rooms []Room
	if err := json.Unmarshal(body, &rooms); err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []Room{}
	}
	return rooms, nil
}
