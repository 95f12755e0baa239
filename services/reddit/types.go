package reddit

import (
	"context"
	"errors"
	"net/http"
)

var (
	ErrUnsafeName        = errors.New("name cannot be embedded in a listing URL")
	ErrRemoteError       = errors.New("listing payload carries an error field")
	ErrUnexpectedPayload = errors.New("listing payload has an unexpected shape")
)

type Client interface {
	ListingURL(name string) (string, error)
	NewPosts(ctx context.Context, name string) (*Listing, error)
}

type Impl struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

type Listing struct {
	Error any          `json:"error,omitempty"`
	Data  *ListingData `json:"data"`
}

type ListingData struct {
	Children []Child `json:"children"`
}

type Child struct {
	Data Post `json:"data"`
}

type Post struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Subreddit  string  `json:"subreddit"`
	Author     string  `json:"author"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}
