package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"campaign_pulse/internal/domain"
)

// Config holds Apify client configuration.
type Config struct {
	BaseURL        string
	Token          string
	PostActor      string
	CommentActor   string
	PostLimit      int
	CommentLimit   int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client runs Apify actors synchronously and collects their dataset items.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	postActor      string
	commentActor   string
	postLimit      int
	commentLimit   int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new Apify client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		token:          cfg.Token,
		postActor:      cfg.PostActor,
		commentActor:   cfg.CommentActor,
		postLimit:      cfg.PostLimit,
		commentLimit:   cfg.CommentLimit,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "apify"),
	}
}

// FetchPosts fetches the most recent posts of one profile.
func (c *Client) FetchPosts(ctx context.Context, username string) ([]PostRecord, error) {
	input := map[string]any{
		"username":     []string{username},
		"resultsLimit": c.postLimit,
	}

	var records []PostRecord
	if err := c.runActor(ctx, c.postActor, input, &records); err != nil {
		return nil, fmt.Errorf("fetch posts for %s: %w", username, err)
	}

	c.logger.Debug("fetched posts", "username", username, "records", len(records))

	return records, nil
}

// FetchComments fetches the comments of one post.
func (c *Client) FetchComments(ctx context.Context, postURL string) ([]CommentRecord, error) {
	input := map[string]any{
		"directUrls":   []string{postURL},
		"resultsLimit": c.commentLimit,
	}

	var records []CommentRecord
	if err := c.runActor(ctx, c.commentActor, input, &records); err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", postURL, err)
	}

	c.logger.Debug("fetched comments", "post_url", postURL, "records", len(records))

	return records, nil
}

func (c *Client) runActor(ctx context.Context, actorID string, input map[string]any, out any) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, actorID, input, out)
		if err == nil {
			return nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("actor run failed, retrying",
			"actor", actorID,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("%w: actor %s after %d attempts: %v", domain.ErrProviderUnavailable, actorID, c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, actorID string, input map[string]any, out any) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode run input: %w", err)
	}

	actor := strings.ReplaceAll(actorID, "/", "~")
	url := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s&format=json", c.baseURL, actor, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	// run-sync endpoints answer 201 when the actor finishes successfully
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode dataset items: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
