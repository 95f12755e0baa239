package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subreddit-tracker/models/constants"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Impl {
	viper.Set(constants.RedditBaseURL, baseURL)
	viper.Set(constants.RedditUserAgent, "subreddit-tracker:test")
	viper.Set(constants.RedditTimeout, time.Second)
	return New()
}

func TestListingURL(t *testing.T) {
	client := newTestClient("https://www.reddit.com")

	tests := []struct {
		name      string
		candidate string
		expected  string
		unsafe    bool
	}{
		{name: "plain name", candidate: "AskReddit", expected: "https://www.reddit.com/r/AskReddit/new.json"},
		{name: "multireddit selector", candidate: "AskReddit+pics", expected: "https://www.reddit.com/r/AskReddit+pics/new.json"},
		{name: "space", candidate: "ask reddit", unsafe: true},
		{name: "query separator", candidate: "aww?limit=1", unsafe: true},
		{name: "fragment separator", candidate: "aww#top", unsafe: true},
		{name: "invalid percent escape", candidate: "aww%zz", unsafe: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, err := client.ListingURL(tt.candidate)
			if tt.unsafe {
				assert.ErrorIs(t, err, ErrUnsafeName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, endpoint)
		})
	}
}

func TestNewPostsParsesListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/golang/new.json", r.URL.Path)
		assert.Equal(t, "subreddit-tracker:test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"data":{"children":[{"data":{"id":"1abc","name":"t3_1abc","title":"Go 1.22","subreddit":"golang","author":"gopher","created_utc":1710000000.0}}]}}`))
	}))
	defer server.Close()

	listing, err := newTestClient(server.URL).NewPosts(context.Background(), "golang")

	require.NoError(t, err)
	require.Len(t, listing.Data.Children, 1)
	post := listing.Data.Children[0].Data
	assert.Equal(t, "t3_1abc", post.Name)
	assert.Equal(t, "Go 1.22", post.Title)
	assert.Equal(t, "golang", post.Subreddit)
}

func TestNewPostsEmptyListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"children":[]}}`))
	}))
	defer server.Close()

	listing, err := newTestClient(server.URL).NewPosts(context.Background(), "golang")

	require.NoError(t, err)
	assert.Empty(t, listing.Data.Children)
}

func TestNewPostsErrorPayloads(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected error
	}{
		{name: "explicit error field", body: `{"error": 404, "message": "Not Found"}`, expected: ErrRemoteError},
		{name: "not json", body: `<html>gateway timeout</html>`, expected: ErrUnexpectedPayload},
		{name: "json without data", body: `{"kind":"Listing"}`, expected: ErrUnexpectedPayload},
		{name: "json array", body: `[]`, expected: ErrUnexpectedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).NewPosts(context.Background(), "golang")

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestNewPostsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).NewPosts(context.Background(), "golang")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRemoteError)
	assert.NotErrorIs(t, err, ErrUnexpectedPayload)
}

func TestNewPostsRejectsUnsafeNameWithoutRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requests++
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).NewPosts(context.Background(), "ask reddit")

	assert.ErrorIs(t, err, ErrUnsafeName)
	assert.Zero(t, requests)
}
