package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"subreddit-tracker/models/constants"

	"github.com/spf13/viper"
)

func New() *Impl {
	return &Impl{
		baseURL:   viper.GetString(constants.RedditBaseURL),
		userAgent: viper.GetString(constants.RedditUserAgent),
		client: &http.Client{
			Timeout: viper.GetDuration(constants.RedditTimeout),
		},
	}
}

// ListingURL builds <base>/r/<name>/new.json. A name is accepted only if
// the built URL parses and its escaped path survives unchanged, so anything
// needing percent-escaping (spaces, '?', '#', control bytes) is rejected.
// Multireddit selectors joined with '+' pass through untouched.
func (client *Impl) ListingURL(name string) (string, error) {
	endpoint := fmt.Sprintf("%s/r/%s/new.json", client.baseURL, name)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}

	if parsed.EscapedPath() != "/r/"+name+"/new.json" || parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}

	return endpoint, nil
}

// NewPosts fetches the "new" listing for a subreddit name or multireddit
// selector. Transport failures come back wrapped as-is; Reddit signals
// missing or banned subreddits inside the JSON body, so the response is
// decoded regardless of the HTTP status.
func (client *Impl) NewPosts(ctx context.Context, name string) (*Listing, error) {
	endpoint, err := client.ListingURL(name)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing request: %w", err)
	}
	req.Header.Set("User-Agent", client.userAgent)

	resp, err := client.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	defer resp.Body.Close()

	var listing Listing
	if errDecode := json.NewDecoder(resp.Body).Decode(&listing); errDecode != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedPayload, errDecode)
	}

	if listing.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteError, listing.Error)
	}

	if listing.Data == nil {
		return nil, fmt.Errorf("%w: missing data object", ErrUnexpectedPayload)
	}

	return &listing, nil
}
