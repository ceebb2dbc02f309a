package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/easter-api/internal/calendar"
	"github.com/zapponejosh/easter-api/internal/config"
	"github.com/zapponejosh/easter-api/internal/easter"
	"github.com/zapponejosh/easter-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	calc   *easter.Calculator
	cfg    *config.Config
	logger *slog.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		calc: &easter.Calculator{
			EarliestYear:       cfg.EarliestYear,
			GregorianStartYear: cfg.GregorianStartYear,
		},
		cfg:    cfg,
		logger: logger,
		loc:    cfg.Location(),
		now:    time.Now,
	}
}

// today returns the current date in the configured time zone.
func (h *Handlers) today() calendar.Date {
	return calendar.DateOf(h.now().In(h.loc))
}

// asOf returns the date summaries are phrased against: the as_of query
// parameter (ISO 8601) when present, otherwise today.
func (h *Handlers) asOf(r *http.Request) (calendar.Date, error) {
	if s := r.URL.Query().Get("as_of"); s != "" {
		return calendar.ParseDate(s)
	}
	return h.today(), nil
}

// =============================================================================
// Response Types
// =============================================================================

// DateView is a date in both machine and display form.
type DateView struct {
	Date      string `json:"date"`
	Formatted string `json:"formatted"`
	Weekday   string `json:"weekday,omitempty"`
}

func gregorianView(d calendar.Date) *DateView {
	return &DateView{
		Date:      d.String(),
		Formatted: d.Formatted(),
		Weekday:   d.Weekday().String(),
	}
}

func julianView(j calendar.JulianDate) DateView {
	return DateView{
		Date:      j.String(),
		Formatted: j.Formatted(),
	}
}

// EasternView is the Orthodox Easter on the Julian calendar and, from the
// Gregorian start year on, its civil Gregorian date.
type EasternView struct {
	Julian    DateView  `json:"julian"`
	Gregorian *DateView `json:"gregorian,omitempty"`
}

// EasterResponse is the response for /easter/{year}.
type EasterResponse struct {
	Year       int         `json:"year"`
	JulianOnly bool        `json:"julian_only"`
	Western    *DateView   `json:"western,omitempty"`
	Eastern    EasternView `json:"eastern"`
	SameDay    bool        `json:"same_day"`
	Summary    string      `json:"summary"`
}

func newEasterResponse(r *easter.Result, today calendar.Date) EasterResponse {
	resp := EasterResponse{
		Year:       r.Year,
		JulianOnly: r.JulianOnly,
		Eastern:    EasternView{Julian: julianView(r.EasternJulian)},
		SameDay:    r.SameDay,
		Summary:    r.Summary(today),
	}
	if !r.JulianOnly {
		resp.Western = gregorianView(r.Western)
		resp.Eastern.Gregorian = gregorianView(r.EasternGregorian)
	}
	return resp
}

// RangeResponse is the response for /easter?start=&end=.
type RangeResponse struct {
	Start   int              `json:"start"`
	End     int              `json:"end"`
	Count   int              `json:"count"`
	Results []EasterResponse `json:"results"`
}

// FeastView is one movable feast.
type FeastView struct {
	Name string `json:"name"`
	DateView
}

// FeastsResponse is the response for /easter/{year}/feasts.
type FeastsResponse struct {
	Year      int                `json:"year"`
	Tradition calendar.Tradition `json:"tradition"`
	Feasts    []FeastView        `json:"feasts"`
}

// ConversionResponse is the response for /julian/{year}/{month}/{day}.
type ConversionResponse struct {
	Julian            DateView  `json:"julian"`
	Gregorian         *DateView `json:"gregorian"`
	SecularDifference int       `json:"secular_difference"`
	JulianLeapYear    bool      `json:"julian_leap_year"`
}

// =============================================================================
// Handlers
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetEaster handles GET /api/v1/easter/{year}?as_of=YYYY-MM-DD
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	year, err := easter.ParseYear(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, easter.InvalidInputMessage)
		return
	}

	asOf, err := h.asOf(r)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	result, err := h.calc.Compute(year)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, newEasterResponse(result, asOf))
}

// GetEasterRange handles GET /api/v1/easter?start=YYYY&end=YYYY[&as_of=YYYY-MM-DD]
func (h *Handlers) GetEasterRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end year parameters are required")
		return
	}

	start, err := easter.ParseYear(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start year: %s", startStr))
		return
	}

	end, err := easter.ParseYear(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end year: %s", endStr))
		return
	}

	if start > end {
		WriteBadRequest(w, "Start year must be before or equal to end year")
		return
	}

	if span := end - start + 1; span > h.cfg.MaxRangeYears {
		WriteBadRequest(w, fmt.Sprintf("Year range cannot exceed %d years", h.cfg.MaxRangeYears))
		return
	}

	asOf, err := h.asOf(r)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	results, err := h.calc.ComputeRange(start, end)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	resp := RangeResponse{
		Start:   start,
		End:     end,
		Count:   len(results),
		Results: make([]EasterResponse, 0, len(results)),
	}
	for _, res := range results {
		resp.Results = append(resp.Results, newEasterResponse(res, asOf))
	}

	WriteSuccess(w, resp)
}

// GetFeasts handles GET /api/v1/easter/{year}/feasts?tradition=western|eastern
func (h *Handlers) GetFeasts(w http.ResponseWriter, r *http.Request) {
	year, err := easter.ParseYear(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, easter.InvalidInputMessage)
		return
	}

	tradition := calendar.Western
	if t := r.URL.Query().Get("tradition"); t != "" {
		tradition, err = calendar.ParseTradition(t)
		if err != nil {
			WriteBadRequest(w, err.Error())
			return
		}
	}

	if year < h.cfg.EarliestYear {
		h.writeCalendarError(w, r, fmt.Errorf("year %d: %w", year, easter.ErrBeforeFirstEaster))
		return
	}
	if tradition == calendar.Western && year < h.cfg.GregorianStartYear {
		h.writeCalendarError(w, r, fmt.Errorf("western feasts are only available from %d: %w",
			h.cfg.GregorianStartYear, calendar.ErrOutOfRange))
		return
	}

	feasts, err := calendar.Feasts(tradition, year)
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	resp := FeastsResponse{
		Year:      year,
		Tradition: tradition,
		Feasts:    make([]FeastView, 0, len(feasts)),
	}
	for _, f := range feasts {
		resp.Feasts = append(resp.Feasts, FeastView{Name: f.Name, DateView: *gregorianView(f.Date)})
	}

	WriteSuccess(w, resp)
}

// ConvertJulian handles GET /api/v1/julian/{year}/{month}/{day}
//
// The year uses astronomical numbering and may be negative.
func (h *Handlers) ConvertJulian(w http.ResponseWriter, r *http.Request) {
	var fields [3]int
	for i, name := range []string{"year", "month", "day"} {
		raw := chi.URLParam(r, name)
		n, err := strconv.Atoi(raw)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid %s: %s", name, raw))
			return
		}
		fields[i] = n
	}

	julian, err := calendar.NewJulianDate(fields[0], time.Month(fields[1]), fields[2])
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	gregorian, err := julian.ToGregorian()
	if err != nil {
		h.writeCalendarError(w, r, err)
		return
	}

	WriteSuccess(w, ConversionResponse{
		Julian:            julianView(julian),
		Gregorian:         gregorianView(gregorian),
		SecularDifference: julian.SecularDifference(),
		JulianLeapYear:    calendar.IsJulianLeapYear(julian.Year()),
	})
}

// writeCalendarError maps calendar and easter errors to HTTP responses.
// Rejected requests are logged at debug level, unanswerable ones at warn
// level and anything unexpected as an error.
func (h *Handlers) writeCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	log := logger.FromContext(ctx, h.logger)

	switch {
	case errors.Is(err, easter.ErrBeforeFirstEaster):
		log.WarnContext(ctx, "year precedes the first easter",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		WriteUnprocessable(w, easter.TooEarlyMessage(h.cfg.EarliestYear), CodeBeforeFirstEaster)
	case errors.Is(err, calendar.ErrInvalidDate):
		log.DebugContext(ctx, "invalid date rejected",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidDate)
	case errors.Is(err, calendar.ErrOutOfRange):
		log.WarnContext(ctx, "date out of range",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		WriteUnprocessable(w, err.Error(), CodeOutOfRange)
	default:
		log.ErrorContext(ctx, "calendar computation failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		WriteInternalError(w, "Failed to compute date")
	}
}
