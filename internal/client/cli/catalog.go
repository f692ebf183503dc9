package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rosdobro/dobrodela-cli/internal/client/models"
)

// parseListFilters understands the shared catalog filter tokens:
//
//	city=<name>   — filter by city
//	cat=<c1,c2>   — filter by categories
//	q=<regex>     — search by name
//	fav           — only favorites (requires login)
func parseListFilters(args []string) (city string, categories []string, regex string, favorite bool) {
	for _, arg := range args {
		switch {
		case arg == "fav":
			favorite = true
		case strings.HasPrefix(arg, "city="):
			city = strings.TrimPrefix(arg, "city=")
		case strings.HasPrefix(arg, "cat="):
			categories = strings.Split(strings.TrimPrefix(arg, "cat="), ",")
		case strings.HasPrefix(arg, "q="):
			regex = strings.TrimPrefix(arg, "q=")
		}
	}
	return city, categories, regex, favorite
}

func parseID(args []string) (int64, error) {
	id, err := strconv.ParseInt(args[len(args)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[len(args)-1])
	}
	return id, nil
}

func (a *App) ListNKOs(ctx context.Context, args []string) error {
	city, categories, regex, favorite := parseListFilters(args)
	f := models.NKOFilter{City: city, Categories: categories, Regex: regex, Favorite: favorite}

	nkos, err := a.catalog.NKOs(ctx, f)
	if err != nil {
		printAuthError(err)
		return err
	}

	for _, n := range nkos {
		printlnFn(fmt.Sprintf("%d\t%s\t%s", n.ID, n.Name, n.City))
	}
	printlnFn(fmt.Sprintf("Всего: %d", len(nkos)))
	return nil
}

func (a *App) ShowNKO(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	n, err := a.catalog.NKO(ctx, id)
	if err != nil {
		printAuthError(err)
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s", n.ID, n.Name))
	if n.City != "" {
		printlnFn("Город:", n.City)
	}
	if n.Address != "" {
		printlnFn("Адрес:", n.Address)
	}
	if len(n.Categories) > 0 {
		printlnFn("Категории:", strings.Join(n.Categories, ", "))
	}
	if n.Description != "" {
		printlnFn(n.Description)
	}
	return nil
}

func (a *App) ListEvents(ctx context.Context, args []string) error {
	city, categories, regex, favorite := parseListFilters(args)
	f := models.EventFilter{City: city, Categories: categories, Regex: regex, Favorite: favorite}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "from="):
			f.TimeFrom = strings.TrimPrefix(arg, "from=")
		case strings.HasPrefix(arg, "to="):
			f.TimeTo = strings.TrimPrefix(arg, "to=")
		}
	}

	events, err := a.catalog.Events(ctx, f)
	if err != nil {
		printAuthError(err)
		return err
	}

	for _, e := range events {
		printlnFn(fmt.Sprintf("%d\t%s\t%s\t%s", e.ID, e.Name, e.City, e.StartsAt))
	}
	printlnFn(fmt.Sprintf("Всего: %d", len(events)))
	return nil
}

func (a *App) ShowEvent(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	e, err := a.catalog.Event(ctx, id)
	if err != nil {
		printAuthError(err)
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s (%s)", e.ID, e.Name, e.NKOName))
	if e.City != "" {
		printlnFn("Город:", e.City)
	}
	if e.StartsAt != "" {
		printlnFn("Начало:", e.StartsAt)
	}
	if e.FinishAt != "" {
		printlnFn("Конец:", e.FinishAt)
	}
	if e.Description != "" {
		printlnFn(e.Description)
	}
	return nil
}

func (a *App) ListNews(ctx context.Context, args []string) error {
	city, _, regex, favorite := parseListFilters(args)
	f := models.NewsFilter{City: city, Regex: regex, Favorite: favorite}

	news, err := a.catalog.News(ctx, f)
	if err != nil {
		printAuthError(err)
		return err
	}

	for _, n := range news {
		printlnFn(fmt.Sprintf("%d\t%s\t%s", n.ID, n.Title, n.CreatedAt))
	}
	printlnFn(fmt.Sprintf("Всего: %d", len(news)))
	return nil
}

func (a *App) ListCities(ctx context.Context, args []string) error {
	_, _, regex, _ := parseListFilters(args)

	cities, err := a.catalog.Cities(ctx, regex)
	if err != nil {
		printAuthError(err)
		return err
	}

	for _, c := range cities {
		printlnFn(fmt.Sprintf("%d\t%s", c.ID, c.Name))
	}
	return nil
}

// Favorite marks or unmarks a catalog item: args are [kind, id] with kind
// one of nko, event, news.
func (a *App) Favorite(ctx context.Context, args []string, favorite bool) error {
	id, err := parseID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	switch args[0] {
	case "nko":
		err = a.catalog.SetNKOFavorite(ctx, id, favorite)
	case "event":
		err = a.catalog.SetEventFavorite(ctx, id, favorite)
	case "news":
		err = a.catalog.SetNewsFavorite(ctx, id, favorite)
	default:
		printlnFn("Unknown kind:", args[0])
		return fmt.Errorf("unknown kind %q", args[0])
	}

	if err != nil {
		printAuthError(err)
		return err
	}

	if favorite {
		printlnFn("Добавлено в избранное")
	} else {
		printlnFn("Убрано из избранного")
	}
	return nil
}
