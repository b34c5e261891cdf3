package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/mastowrap/mastowrap/internal/core/model"
	"github.com/mastowrap/mastowrap/internal/util"
)

const (
	statusPageSize = 40
	maxPages       = 500
)

// Client is a minimal Mastodon API client covering the two calls the
// pipeline needs: resolving the account and paging through statuses.
type Client struct {
	server     string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for one instance. The server is the base
// URL, e.g. https://mastodon.social.
func NewClient(server, token string) *Client {
	return &Client{
		server: strings.TrimSuffix(server, "/"),
		token:  token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// VerifyCredentials resolves the token's own account.
func (c *Client) VerifyCredentials(ctx context.Context) (model.Account, error) {
	var account model.Account
	if err := c.getJSON(ctx, "/api/v1/accounts/verify_credentials", nil, &account); err != nil {
		return model.Account{}, fmt.Errorf("failed to verify credentials: %w", err)
	}
	return account, nil
}

// LookupAccount resolves a handle like user@example.org to an account.
func (c *Client) LookupAccount(ctx context.Context, acct string) (model.Account, error) {
	var account model.Account
	query := url.Values{"acct": []string{strings.TrimPrefix(acct, "@")}}
	if err := c.getJSON(ctx, "/api/v1/accounts/lookup", query, &account); err != nil {
		return model.Account{}, fmt.Errorf("failed to look up account %s: %w", acct, err)
	}
	return account, nil
}

// FetchStatuses pages backwards through the account's statuses until
// it reaches posts created before since, then stops. The caller
// filters by window; this only bounds how far back to page.
func (c *Client) FetchStatuses(ctx context.Context, accountID string, since time.Time) ([]model.Post, error) {
	var all []model.Post
	maxID := ""

	for page := 0; page < maxPages; page++ {
		query := url.Values{"limit": []string{fmt.Sprintf("%d", statusPageSize)}}
		if maxID != "" {
			query.Set("max_id", maxID)
		}

		var batch []model.Post
		path := fmt.Sprintf("/api/v1/accounts/%s/statuses", accountID)
		if err := c.getJSON(ctx, path, query, &batch); err != nil {
			return nil, fmt.Errorf("failed to fetch statuses (page %d): %w", page+1, err)
		}
		if len(batch) == 0 {
			break
		}

		all = append(all, batch...)
		maxID = batch[len(batch)-1].Id
		util.LogDebugf("Fetched %d statuses (total %d)", len(batch), len(all))

		oldest, err := batch[len(batch)-1].CreatedTime()
		if err == nil && oldest.Before(since) {
			break
		}
	}

	util.LogInfof("Fetched %d statuses from %s", len(all), c.server)
	return all, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.server + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := sonic.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
