package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/service"
	"github.com/go-chi/chi"
)

type CategoryResponse struct {
	Name      domain.Category `json:"name"`
	ItemCount int             `json:"item_count"`
}

// getMenuHandler godoc
//
//	@Summary		List menu items
//	@Description	Lists the catalog, optionally filtered by category, popularity and a search query
//	@Tags			menu
//	@Produce		json
//	@Param			category	query		string	false	"Category name or short key (starter, main, side, dessert, beverage)"
//	@Param			popular		query		bool	false	"Only popular items"
//	@Param			q			query		string	false	"Search in name, description and category"
//	@Success		200			{array}		domain.MenuItem
//	@Failure		400			{object}	map[string]string
//	@Failure		503			{object}	map[string]string
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	if !app.catalogReady(w, r) {
		return
	}

	query := r.URL.Query()
	keep := []func(domain.MenuItem) bool{}

	if raw := query.Get("category"); raw != "" {
		category, ok := domain.ParseCategory(raw)
		if !ok {
			app.badRequestResponse(w, r, fmt.Errorf("unknown category %q", raw))
			return
		}
		keep = append(keep, func(item domain.MenuItem) bool { return item.Category == category })
	}

	if raw := query.Get("popular"); raw != "" {
		popular, err := strconv.ParseBool(raw)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid popular flag %q", raw))
			return
		}
		keep = append(keep, func(item domain.MenuItem) bool { return item.IsPopular == popular })
	}

	items := []domain.MenuItem{}
	for _, item := range app.catalog.Search(query.Get("q")) {
		if matchesAll(item, keep) {
			items = append(items, item)
		}
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCategoriesHandler godoc
//
//	@Summary		List categories
//	@Description	Lists the menu categories in display order with their item counts
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		CategoryResponse
//	@Failure		503	{object}	map[string]string
//	@Router			/menu/categories [get]
func (app *application) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if !app.catalogReady(w, r) {
		return
	}

	categories := make([]CategoryResponse, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		categories = append(categories, CategoryResponse{
			Name:      category,
			ItemCount: len(app.catalog.ItemsByCategory(category)),
		})
	}

	if err := app.jsonRespone(w, http.StatusOK, categories); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuItemHandler godoc
//
//	@Summary		Get menu item
//	@Description	Get a menu item with ingredients, nutrition and allergens
//	@Tags			menu
//	@Produce		json
//	@Param			item_id	path		string	true	"Item ID"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		404		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Router			/menu/{item_id} [get]
func (app *application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	if !app.catalogReady(w, r) {
		return
	}

	itemID := chi.URLParam(r, "item_id")
	item, ok := app.catalog.Item(itemID)
	if !ok {
		app.notFoundError(w, r, fmt.Errorf("%w: %s", service.ErrMenuItemNotFound, itemID))
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// catalogReady answers 503 while the catalog is loading or after a failed
// first load.
func (app *application) catalogReady(w http.ResponseWriter, r *http.Request) bool {
	if app.catalog.Loading() {
		app.serviceUnavailableResponse(w, r, errors.New("catalog is loading"))
		return false
	}
	if err := app.catalog.Err(); err != nil && app.catalog.Len() == 0 {
		app.serviceUnavailableResponse(w, r, fmt.Errorf("catalog failed to load: %w", err))
		return false
	}
	return true
}

func matchesAll(item domain.MenuItem, keep []func(domain.MenuItem) bool) bool {
	for _, fn := range keep {
		if !fn(item) {
			return false
		}
	}
	return true
}
