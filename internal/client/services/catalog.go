package services

import (
	"context"

	"github.com/rosdobro/dobrodela-cli/internal/client/api"
	"github.com/rosdobro/dobrodela-cli/internal/client/models"
	"github.com/rosdobro/dobrodela-cli/internal/logging"
)

// CatalogService exposes the portal catalog (NKOs, events, news, cities) and
// per-user favorites. It is a thin layer over the API client; session
// renewal on 401 happens below it, inside the request wrapper.
type CatalogService interface {
	NKOs(ctx context.Context, f models.NKOFilter) ([]models.NKO, error)
	NKO(ctx context.Context, id int64) (*models.NKO, error)
	Events(ctx context.Context, f models.EventFilter) ([]models.Event, error)
	Event(ctx context.Context, id int64) (*models.Event, error)
	News(ctx context.Context, f models.NewsFilter) ([]models.News, error)
	Cities(ctx context.Context, regex string) ([]models.City, error)

	SetNKOFavorite(ctx context.Context, id int64, favorite bool) error
	SetEventFavorite(ctx context.Context, id int64, favorite bool) error
	SetNewsFavorite(ctx context.Context, id int64, favorite bool) error

	Ping(ctx context.Context) error
}

type catalogService struct {
	client api.Client
	log    logging.Logger
}

func NewCatalogService(client api.Client, log logging.Logger) CatalogService {
	return &catalogService{client: client, log: log}
}

func (s *catalogService) NKOs(ctx context.Context, f models.NKOFilter) ([]models.NKO, error) {
	return s.client.ListNKO(ctx, f)
}

func (s *catalogService) NKO(ctx context.Context, id int64) (*models.NKO, error) {
	return s.client.GetNKO(ctx, id)
}

func (s *catalogService) Events(ctx context.Context, f models.EventFilter) ([]models.Event, error) {
	return s.client.ListEvents(ctx, f)
}

func (s *catalogService) Event(ctx context.Context, id int64) (*models.Event, error) {
	return s.client.GetEvent(ctx, id)
}

func (s *catalogService) News(ctx context.Context, f models.NewsFilter) ([]models.News, error) {
	return s.client.ListNews(ctx, f)
}

func (s *catalogService) Cities(ctx context.Context, regex string) ([]models.City, error) {
	return s.client.ListCities(ctx, regex)
}

func (s *catalogService) SetNKOFavorite(ctx context.Context, id int64, favorite bool) error {
	if favorite {
		return s.client.AddFavoriteNKO(ctx, id)
	}
	return s.client.RemoveFavoriteNKO(ctx, id)
}

func (s *catalogService) SetEventFavorite(ctx context.Context, id int64, favorite bool) error {
	if favorite {
		return s.client.AddFavoriteEvent(ctx, id)
	}
	return s.client.RemoveFavoriteEvent(ctx, id)
}

func (s *catalogService) SetNewsFavorite(ctx context.Context, id int64, favorite bool) error {
	if favorite {
		return s.client.AddFavoriteNews(ctx, id)
	}
	return s.client.RemoveFavoriteNews(ctx, id)
}

func (s *catalogService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
