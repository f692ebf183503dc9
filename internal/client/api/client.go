package api

import (
	"context"

	"github.com/rosdobro/dobrodela-cli/internal/client/models"
)

// Client is the API contract the rest of the application programs against.
// HTTPClient is the production implementation; tests substitute fakes.
type Client interface {
	// Auth.
	Login(ctx context.Context, login, password string) (*models.TokenResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	// Catalog.
	ListNKO(ctx context.Context, f models.NKOFilter) ([]models.NKO, error)
	GetNKO(ctx context.Context, id int64) (*models.NKO, error)
	ListEvents(ctx context.Context, f models.EventFilter) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	ListNews(ctx context.Context, f models.NewsFilter) ([]models.News, error)
	ListCities(ctx context.Context, regex string) ([]models.City, error)

	// Favorites.
	AddFavoriteNKO(ctx context.Context, id int64) error
	RemoveFavoriteNKO(ctx context.Context, id int64) error
	AddFavoriteEvent(ctx context.Context, id int64) error
	RemoveFavoriteEvent(ctx context.Context, id int64) error
	AddFavoriteNews(ctx context.Context, id int64) error
	RemoveFavoriteNews(ctx context.Context, id int64) error

	// Liveness.
	Ping(ctx context.Context) error
}
