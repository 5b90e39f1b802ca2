package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/JoseMolina94/youtube-api-integration/internal/errors"
	"github.com/JoseMolina94/youtube-api-integration/internal/metrics"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
)

const (
	defaultBaseURL  = "https://www.googleapis.com/youtube/v3"
	httpCallTimeout = 10 * time.Second

	// searchMaxResults matches the original deployment's page size.
	searchMaxResults = 18

	relatedQueryWords = 3
)

// Client calls the YouTube Data API v3. It implements domain.VideoCatalog.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: httpCallTimeout},
	}
}

// get performs one upstream call and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode()), nil)
	if err != nil {
		return apperrors.UpstreamError("failed to build upstream request", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return apperrors.UpstreamError("upstream request failed", err).WithField("endpoint", endpoint)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return apperrors.UpstreamError(fmt.Sprintf("upstream returned status %d", resp.StatusCode), nil).
			WithField("endpoint", endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.UpstreamError("failed to decode upstream response", err).WithField("endpoint", endpoint)
	}
	return nil
}

// Search executes a catalog search. PageToken and ChannelID pass through to
// the upstream unmodified; the continuation token stays opaque.
func (c *Client) Search(ctx context.Context, p domain.SearchParams) (*domain.SearchResult, error) {
	itemType := p.Type
	if itemType == "" {
		itemType = "video"
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(searchMaxResults))
	params.Set("type", itemType)
	params.Set("q", p.Query)
	if p.ChannelID != "" {
		params.Set("channelId", p.ChannelID)
	}
	if p.PageToken != "" {
		params.Set("pageToken", p.PageToken)
	}

	var resp searchResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}
	return resp.toResult(), nil
}

// GetChannel fetches snippet and branding for one channel.
func (c *Client) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	params := url.Values{}
	params.Set("part", "snippet,brandingSettings")
	params.Set("id", channelID)

	var resp channelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, domain.ErrChannelNotFound
	}

	item := resp.Items[0]
	channel := &domain.Channel{
		ID:          item.ID,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Avatar:      pickAvatar(item.Snippet.Thumbnails),
	}
	if banner := item.BrandingSettings.Image.BannerExternalURL; banner != "" {
		channel.Banner = &banner
	}
	return channel, nil
}

// GetVideo fetches snippet and statistics for one video.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*domain.Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", videoID)

	var resp videoListResponse
	if err := c.get(ctx, "videos", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, domain.ErrVideoNotFound
	}
	return &resp.Items[0], nil
}

// GetRelated approximates related videos: it searches by the first words of
// the source video's title, ordered by relevance, and drops the source video
// from the results.
func (c *Client) GetRelated(ctx context.Context, videoID, pageToken string) (*domain.SearchResult, error) {
	video, err := c.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(searchMaxResults))
	params.Set("type", "video")
	params.Set("order", "relevance")
	params.Set("q", relatedQuery(video.Snippet.Title))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var resp searchResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}

	result := resp.toResult()
	filtered := result.Items[:0]
	for _, item := range result.Items {
		if item.ID.VideoID != videoID {
			filtered = append(filtered, item)
		}
	}
	result.Items = filtered
	return result, nil
}

// relatedQuery builds the proxy search query from a video title.
func relatedQuery(title string) string {
	words := strings.Fields(title)
	if len(words) > relatedQueryWords {
		words = words[:relatedQueryWords]
	}
	return strings.Join(words, " ")
}

// pickAvatar prefers the high-resolution thumbnail, falling back to default.
func pickAvatar(thumbnails map[string]domain.Thumbnail) string {
	if thumb, ok := thumbnails["high"]; ok && thumb.URL != "" {
		return thumb.URL
	}
	if thumb, ok := thumbnails["default"]; ok {
		return thumb.URL
	}
	return ""
}

// --- Upstream response shapes ---

type searchResponse struct {
	NextPageToken string        `json:"nextPageToken"`
	Items         []domain.Item `json:"items"`
}

func (r *searchResponse) toResult() *domain.SearchResult {
	items := r.Items
	if items == nil {
		items = []domain.Item{}
	}
	return &domain.SearchResult{
		Items:         items,
		NextPageToken: r.NextPageToken,
	}
}

type channelListResponse struct {
	Items []struct {
		ID               string         `json:"id"`
		Snippet          domain.Snippet `json:"snippet"`
		BrandingSettings struct {
			Image struct {
				BannerExternalURL string `json:"bannerExternalUrl"`
			} `json:"image"`
		} `json:"brandingSettings"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []domain.Video `json:"items"`
}
