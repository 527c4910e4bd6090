package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coder/websocket"
)

// DefaultSubmitTimeout bounds a fire-and-forget submission.
const DefaultSubmitTimeout = 3 * time.Second

// Client talks to a leaderboard server.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient parses baseURL ("http://host:3000").
func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("leaderboard: bad url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("leaderboard: bad url %q: scheme must be http or https", baseURL)
	}
	return &Client{base: u, http: &http.Client{Timeout: 10 * time.Second}}, nil
}

func (c *Client) endpoint(path string) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

// Submit posts e. Callers on the UI path wrap ctx with a short deadline.
func (c *Client) Submit(ctx context.Context, e Entry) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("leaderboard: encode entry: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/leaderboard"), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: submit: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("leaderboard: submit rejected: %w", ErrInvalidEntry)
	default:
		return fmt.Errorf("leaderboard: submit: unexpected status %s", resp.Status)
	}
}

// Fetch returns the current board.
func (c *Client) Fetch(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/leaderboard"), nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard: fetch: unexpected status %s", resp.Status)
	}
	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("leaderboard: decode board: %w", err)
	}
	return entries, nil
}

// Watch connects to the push channel and delivers every snapshot on the
// returned channel until ctx ends or the connection drops; the channel is
// then closed.
func (c *Client) Watch(ctx context.Context) (<-chan []Entry, error) {
	u := *c.base
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"

	conn, _, err := websocket.Dial(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: dial %s: %w", u.String(), err)
	}

	out := make(chan []Entry, 1)
	go func() {
		defer close(out)
		defer conn.CloseNow() //nolint:errcheck
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			var msg Message
			if json.Unmarshal(data, &msg) != nil || msg.Type != MessageTypeLeaderboard {
				continue
			}
			// keep only the newest snapshot when the reader is slow
			select {
			case out <- msg.Data:
			default:
				select {
				case <-out:
				default:
				}
				select {
				case out <- msg.Data:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
