package api

import (
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"listings/internal/engine"
	"listings/internal/models"
)

type Handler struct {
	store atomic.Pointer[engine.Store]
}

// NewHandler returns a Handler serving store. A nil store answers 503 until SetStore is called.
func NewHandler(store *engine.Store) *Handler {
	h := &Handler{}
	if store != nil {
		h.store.Store(store)
	}
	return h
}

// SetStore swaps in a freshly loaded store.
func (h *Handler) SetStore(store *engine.Store) {
	h.store.Store(store)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/listings", h.GetListings)
	api.GET("/listings/search", h.SearchListings)
	api.GET("/listings/by-country", h.GetListingsByCountry)
	api.GET("/listings/missing", h.GetMissing)
	api.GET("/listings/:id", h.GetListing)
}

// --- HANDLERS ---

func (h *Handler) loaded(c echo.Context) (*engine.Store, error) {
	store := h.store.Load()
	if store == nil {
		return nil, c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "listings are still loading"})
	}
	return store, nil
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
}

func (h *Handler) GetHealth(c echo.Context) error {
	store := h.store.Load()
	if store == nil {
		return c.JSON(http.StatusServiceUnavailable, models.Health{Status: "loading"})
	}
	return c.JSON(http.StatusOK, models.Health{Status: "ok", Listings: store.Len()})
}

func (h *Handler) GetListings(c echo.Context) error {
	store, err := h.loaded(c)
	if store == nil {
		return err
	}
	return c.JSON(http.StatusOK, store.All())
}

func (h *Handler) GetListing(c echo.Context) error {
	store, err := h.loaded(c)
	if store == nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, &engine.InvalidArgumentError{Name: "id", Value: c.Param("id")})
	}
	l, ok := store.ByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "listing not found"})
	}
	return c.JSON(http.StatusOK, l)
}

// an empty term yields [], "show all" is GET /api/listings
func (h *Handler) SearchListings(c echo.Context) error {
	store, err := h.loaded(c)
	if store == nil {
		return err
	}
	return c.JSON(http.StatusOK, engine.FindByColorOrLanguage(c.QueryParam("term"), store.All()))
}

// groups ordered alphabetically by country label
func (h *Handler) GetListingsByCountry(c echo.Context) error {
	store, err := h.loaded(c)
	if store == nil {
		return err
	}
	groups := engine.GroupByCountry(store.All())
	return c.JSON(http.StatusOK, engine.SortedGroups(groups))
}

func (h *Handler) GetMissing(c echo.Context) error {
	store, err := h.loaded(c)
	if store == nil {
		return err
	}
	field, err := engine.ParseField(c.QueryParam("field"))
	if err != nil {
		return badRequest(c, err)
	}
	missing, err := engine.FindMissing(field, store.All())
	if err != nil {
		var argErr *engine.InvalidArgumentError
		if errors.As(err, &argErr) {
			return badRequest(c, err)
		}
		return err
	}
	return c.JSON(http.StatusOK, missing)
}
