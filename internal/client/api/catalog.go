package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rosdobro/dobrodela-cli/internal/client/models"
	"github.com/rosdobro/dobrodela-cli/internal/common"
)

// favoriteQuery fills the legacy jwt_token query parameter the list endpoints
// expect for favorite filtering.
func (c *HTTPClient) favoriteQuery(ctx context.Context, q url.Values) error {
	token, ok := c.cookies.GetAccessToken(ctx)
	if !ok {
		return fmt.Errorf("favorite filter requires a session: %w", common.ErrUnauthorized)
	}
	q.Set("jwt_token", token)
	q.Set("favorite", "true")
	return nil
}

func (c *HTTPClient) ListNKO(ctx context.Context, f models.NKOFilter) ([]models.NKO, error) {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	for _, cat := range f.Categories {
		q.Add("category", cat)
	}
	if f.Regex != "" {
		q.Set("regex", f.Regex)
	}
	if f.Favorite {
		if err := c.favoriteQuery(ctx, q); err != nil {
			return nil, err
		}
	}

	var result []models.NKO
	if err := c.getJSON(ctx, withQuery("/nko", q), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetNKO(ctx context.Context, id int64) (*models.NKO, error) {
	var nko models.NKO
	if err := c.getJSON(ctx, "/nko/"+strconv.FormatInt(id, 10), &nko); err != nil {
		return nil, err
	}
	return &nko, nil
}

func (c *HTTPClient) ListEvents(ctx context.Context, f models.EventFilter) ([]models.Event, error) {
	q := url.Values{}
	for _, id := range f.NKOIDs {
		q.Add("nko_id", strconv.FormatInt(id, 10))
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	for _, cat := range f.Categories {
		q.Add("category", cat)
	}
	if f.Regex != "" {
		q.Set("regex", f.Regex)
	}
	if f.TimeFrom != "" {
		q.Set("time_from", f.TimeFrom)
	}
	if f.TimeTo != "" {
		q.Set("time_to", f.TimeTo)
	}
	if f.Favorite {
		if err := c.favoriteQuery(ctx, q); err != nil {
			return nil, err
		}
	}

	var result []models.Event
	if err := c.getJSON(ctx, withQuery("/event", q), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := c.getJSON(ctx, "/event/"+strconv.FormatInt(id, 10), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *HTTPClient) ListNews(ctx context.Context, f models.NewsFilter) ([]models.News, error) {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.Regex != "" {
		q.Set("regex", f.Regex)
	}
	if f.Favorite {
		if err := c.favoriteQuery(ctx, q); err != nil {
			return nil, err
		}
	}

	var result []models.News
	if err := c.getJSON(ctx, withQuery("/news", q), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) ListCities(ctx context.Context, regex string) ([]models.City, error) {
	q := url.Values{}
	if regex != "" {
		q.Set("regex", regex)
	}

	var result []models.City
	if err := c.getJSON(ctx, withQuery("/city", q), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) AddFavoriteNKO(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/nko/%d/favorite", id))
}

func (c *HTTPClient) RemoveFavoriteNKO(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/nko/%d/favorite", id))
}

func (c *HTTPClient) AddFavoriteEvent(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/event/%d/favorite", id))
}

func (c *HTTPClient) RemoveFavoriteEvent(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/event/%d/favorite", id))
}

func (c *HTTPClient) AddFavoriteNews(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/news/%d/favorite", id))
}

func (c *HTTPClient) RemoveFavoriteNews(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/news/%d/favorite", id))
}

// Ping probes backend liveness.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/ping", &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return common.ErrUnavailable
	}
	return nil
}

func withQuery(endpoint string, q url.Values) string {
	if len(q) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}
