package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/tredeco-api/internal/astronomy"
	"github.com/zapponejosh/tredeco-api/internal/config"
	"github.com/zapponejosh/tredeco-api/internal/database"
	"github.com/zapponejosh/tredeco-api/internal/logger"
	"github.com/zapponejosh/tredeco-api/internal/places"
	"github.com/zapponejosh/tredeco-api/internal/tredeco"
)

// Standard years accepted by the year and conversion endpoints, so every
// date in a response has a four digit year.
const (
	minYear = 1
	maxYear = 9998
)

// Astronomer computes the sky report for a day at a place.
type Astronomer interface {
	Observe(date time.Time, latitude, longitude float64) (*astronomy.Report, error)
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db      *database.DB
	cfg     *config.Config
	logger  *slog.Logger
	presets places.Presets
	sky     Astronomer
	now     func() time.Time
}

// Option configures Handlers.
type Option func(*Handlers)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(h *Handlers) { h.now = now }
}

// WithAstronomer replaces the astronomy calculator.
func WithAstronomer(a Astronomer) Option {
	return func(h *Handlers) { h.sky = a }
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, presets places.Presets, logger *slog.Logger, opts ...Option) *Handlers {
	h := &Handlers{
		db:      db,
		cfg:     cfg,
		logger:  logger,
		presets: presets,
		sky:     astronomy.Calculator{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		logger.Warn(ctx, h.logger, "health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// TodayView is the answer of GET /api/v1/today.
type TodayView struct {
	ConversionView
	Location  LocationView      `json:"location"`
	Astronomy *astronomy.Report `json:"astronomy"`
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := h.now()
	if h.cfg.Location != nil {
		now = now.In(h.cfg.Location)
	}

	conv, err := convert(now)
	if err != nil {
		h.writeCalendarError(ctx, w, err)
		return
	}

	loc, err := h.todayLocation(ctx, optionalOwner(r, h.cfg))
	if err != nil {
		logger.Error(ctx, h.logger, "failed to resolve location", err)
		WriteInternalError(w, "Failed to resolve location")
		return
	}

	report, err := h.sky.Observe(now, loc.Latitude, loc.Longitude)
	if err != nil {
		logger.Error(ctx, h.logger, "failed to compute astronomy", err,
			slog.Float64("latitude", loc.Latitude),
			slog.Float64("longitude", loc.Longitude))
		WriteInternalError(w, "Failed to compute astronomy")
		return
	}

	WriteSuccess(w, TodayView{
		ConversionView: conv,
		Location:       loc,
		Astronomy:      report,
	})
}

// ConvertStandard handles GET /api/v1/convert/standard/{date}
func (h *Handlers) ConvertStandard(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr), CodeInvalidArgument)
		return
	}

	conv, err := convert(date)
	if err != nil {
		h.writeCalendarError(r.Context(), w, err)
		return
	}
	if year := conv.Tredeco.Year; year < minYear || year > maxYear {
		WriteBadRequest(w, fmt.Sprintf("Tredeco year must be between %d and %d, got %d", minYear, maxYear, year), CodeOutOfRange)
		return
	}

	WriteSuccess(w, conv)
}

// ConvertTredeco handles GET /api/v1/convert/tredeco/{year}/{month}/{day}
//
// month is an index (0-12, 13 for Nilo, 14 for Bix) or a name.
func (h *Handlers) ConvertTredeco(w http.ResponseWriter, r *http.Request) {
	year, month, day, err := tredeco.ParseSelector(
		chi.URLParam(r, "year"),
		chi.URLParam(r, "month"),
		chi.URLParam(r, "day"),
	)
	if err != nil {
		h.writeCalendarError(r.Context(), w, err)
		return
	}
	if year < minYear || year > maxYear {
		WriteBadRequest(w, fmt.Sprintf("Year must be between %d and %d", minYear, maxYear), CodeOutOfRange)
		return
	}

	standard, err := tredeco.TredecoToStandard(year, month, day)
	if err != nil {
		h.writeCalendarError(r.Context(), w, err)
		return
	}

	conv, err := convert(standard)
	if err != nil {
		h.writeCalendarError(r.Context(), w, err)
		return
	}

	WriteSuccess(w, conv)
}

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	yearStr := chi.URLParam(r, "year")

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr), CodeInvalidArgument)
		return
	}
	if year < minYear || year > maxYear {
		WriteBadRequest(w, fmt.Sprintf("Year must be between %d and %d", minYear, maxYear), CodeOutOfRange)
		return
	}

	WriteSuccess(w, newYearView(tredeco.NewYearGrid(year)))
}

// GetAstronomy handles GET /api/v1/astronomy/{date}?city=KEY or ?lat=&lon=
//
// Without a query the default city is used.
func (h *Handlers) GetAstronomy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dateStr := chi.URLParam(r, "date")

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr), CodeInvalidArgument)
		return
	}

	loc, err := h.queryLocation(r)
	if err != nil {
		var bad *badRequestError
		if errors.As(err, &bad) {
			WriteBadRequest(w, bad.msg, bad.code)
			return
		}
		logger.Error(ctx, h.logger, "failed to resolve location", err)
		WriteInternalError(w, "Failed to resolve location")
		return
	}

	report, err := h.sky.Observe(date, loc.Latitude, loc.Longitude)
	if err != nil {
		logger.Error(ctx, h.logger, "failed to compute astronomy", err, slog.String("date", dateStr))
		WriteInternalError(w, "Failed to compute astronomy")
		return
	}

	WriteSuccess(w, map[string]any{
		"location":  loc,
		"astronomy": report,
	})
}

// ListCities handles GET /api/v1/cities
func (h *Handlers) ListCities(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]any{
		"default": h.cfg.DefaultCity,
		"cities":  h.presets,
	})
}

// GetLocation handles GET /api/v1/location
func (h *Handlers) GetLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	loc, err := h.db.GetLocation(ctx, GetUserID(r))
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "No saved location")
			return
		}
		logger.Error(ctx, h.logger, "failed to get location", err)
		WriteInternalError(w, "Failed to retrieve location")
		return
	}

	WriteSuccess(w, loc)
}

// saveLocationRequest is the body of PUT /api/v1/location: either a
// preset key or explicit coordinates.
type saveLocationRequest struct {
	City      string   `json:"city,omitempty"`
	Label     string   `json:"label,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// PutLocation handles PUT /api/v1/location
func (h *Handlers) PutLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req saveLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	loc := &database.Location{Owner: GetUserID(r)}

	switch {
	case req.City != "":
		if req.Latitude != nil || req.Longitude != nil {
			WriteBadRequest(w, "Send either city or latitude and longitude, not both")
			return
		}
		place, err := h.presets.Lookup(req.City)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Unknown city: %s", req.City), "UNKNOWN_CITY")
			return
		}
		loc.Label = place.Label
		loc.Latitude = place.Latitude
		loc.Longitude = place.Longitude

	case req.Latitude != nil && req.Longitude != nil:
		if err := astronomy.ValidateCoordinates(*req.Latitude, *req.Longitude); err != nil {
			WriteBadRequest(w, err.Error(), "INVALID_COORDINATES")
			return
		}
		loc.Label = strings.TrimSpace(req.Label)
		loc.Latitude = *req.Latitude
		loc.Longitude = *req.Longitude

	default:
		WriteBadRequest(w, "city or latitude and longitude are required")
		return
	}

	if err := h.db.SaveLocation(ctx, loc); err != nil {
		logger.Error(ctx, h.logger, "failed to save location", err)
		WriteInternalError(w, "Failed to save location")
		return
	}

	WriteSuccess(w, loc)
}

// DeleteLocation handles DELETE /api/v1/location
func (h *Handlers) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.DeleteLocation(ctx, GetUserID(r)); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "No saved location")
			return
		}
		logger.Error(ctx, h.logger, "failed to delete location", err)
		WriteInternalError(w, "Failed to delete location")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Location deleted"})
}

// LocationView describes where astronomy data was computed.
type LocationView struct {
	Source    string  `json:"source"` // saved, city or coordinates
	Key       string  `json:"key,omitempty"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// todayLocation is the owner's saved location, falling back to the
// default city.
func (h *Handlers) todayLocation(ctx context.Context, owner string) (LocationView, error) {
	if owner != "" {
		saved, err := h.db.GetLocation(ctx, owner)
		switch {
		case err == nil:
			return LocationView{
				Source:    "saved",
				Label:     saved.Label,
				Latitude:  saved.Latitude,
				Longitude: saved.Longitude,
			}, nil
		case !database.IsNotFound(err):
			return LocationView{}, fmt.Errorf("get saved location: %w", err)
		}
	}
	return h.cityLocation(h.cfg.DefaultCity)
}

func (h *Handlers) cityLocation(key string) (LocationView, error) {
	place, err := h.presets.Lookup(key)
	if err != nil {
		return LocationView{}, err
	}
	return LocationView{
		Source:    "city",
		Key:       place.Key,
		Label:     place.Label,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
	}, nil
}

// badRequestError is a query problem to report as 400.
type badRequestError struct {
	msg  string
	code string
}

func (e *badRequestError) Error() string { return e.msg }

// queryLocation reads ?city= or ?lat=&lon= and defaults to the default city.
func (h *Handlers) queryLocation(r *http.Request) (LocationView, error) {
	q := r.URL.Query()
	city, latStr, lonStr := q.Get("city"), q.Get("lat"), q.Get("lon")

	switch {
	case city != "":
		loc, err := h.cityLocation(city)
		if errors.Is(err, places.ErrUnknownPlace) {
			return LocationView{}, &badRequestError{fmt.Sprintf("Unknown city: %s", city), "UNKNOWN_CITY"}
		}
		return loc, err

	case latStr != "" || lonStr != "":
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return LocationView{}, &badRequestError{"lat and lon must both be numbers", "INVALID_COORDINATES"}
		}
		if err := astronomy.ValidateCoordinates(lat, lon); err != nil {
			return LocationView{}, &badRequestError{err.Error(), "INVALID_COORDINATES"}
		}
		return LocationView{Source: "coordinates", Latitude: lat, Longitude: lon}, nil
	}

	return h.cityLocation(h.cfg.DefaultCity)
}

// writeCalendarError answers with the code of a calendar engine error, or
// 500 when the engine reports a broken invariant.
func (h *Handlers) writeCalendarError(ctx context.Context, w http.ResponseWriter, err error) {
	if code, ok := calendarErrorCode(err); ok {
		WriteBadRequest(w, err.Error(), code)
		return
	}
	logger.Error(ctx, h.logger, "calendar conversion failed", err)
	WriteInternalError(w, "Calendar conversion failed")
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
