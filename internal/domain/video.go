package domain

import "context"

// SearchParams are the recognized query parameters for a catalog search.
// PageToken and ChannelID are passed through to the upstream unmodified.
type SearchParams struct {
	Query     string
	Type      string
	PageToken string
	ChannelID string
}

// Thumbnail is one rendition of an item's preview image.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Snippet mirrors the upstream snippet shape so that stored item ids can be
// rehydrated by clients without a second mapping layer.
type Snippet struct {
	PublishedAt  string               `json:"publishedAt"`
	ChannelID    string               `json:"channelId"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Thumbnails   map[string]Thumbnail `json:"thumbnails"`
	ChannelTitle string               `json:"channelTitle"`
}

// ItemID carries the polymorphic id of a search result (video or channel).
type ItemID struct {
	Kind      string `json:"kind"`
	VideoID   string `json:"videoId,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
}

// Item is a single search result.
type Item struct {
	ID      ItemID  `json:"id"`
	Snippet Snippet `json:"snippet"`
}

// SearchResult is one page of search results plus the opaque continuation token.
type SearchResult struct {
	Items         []Item `json:"items"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// Channel is the normalized channel detail view.
type Channel struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Avatar      string  `json:"avatar"`
	Banner      *string `json:"banner"`
}

// VideoStatistics are the upstream view/like counters, passed through as strings.
type VideoStatistics struct {
	ViewCount    string `json:"viewCount,omitempty"`
	LikeCount    string `json:"likeCount,omitempty"`
	CommentCount string `json:"commentCount,omitempty"`
}

// Video is a single video detail view, upstream shape.
type Video struct {
	ID         string           `json:"id"`
	Snippet    Snippet          `json:"snippet"`
	Statistics *VideoStatistics `json:"statistics,omitempty"`
}

// VideoCatalog is the upstream search gateway. Implementations are stateless;
// every failure of the remote API surfaces as a single upstream error class.
type VideoCatalog interface {
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
	GetChannel(ctx context.Context, channelID string) (*Channel, error)
	GetVideo(ctx context.Context, videoID string) (*Video, error)
	GetRelated(ctx context.Context, videoID, pageToken string) (*SearchResult, error)
}
