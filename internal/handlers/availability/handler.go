package availability

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/availability/model/dto"
	"atrium/internal/domains/availability/service"
	"atrium/shared/constant"
	"atrium/shared/validator"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Post("/check", handler.CheckAvailability)
		routerGroup.Get("/slots", handler.GetDaySlots)
		routerGroup.Get("/grid", handler.GetGrid)
	})
}

// CheckAvailability reports whether a room is free for an interval.
// @Summary Check room availability
// @Description Check whether a room is free for a half-open time interval.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CheckAvailabilityRequest true "Check Availability Request"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/check [post]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetDaySlots lists the bookable slots of a day.
// @Summary Get day slots
// @Description List the bookable slots of a day, derived from the office hours.
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.DaySlotsResponse] "Slots of the day"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/slots [get]
// @Security BearerAuth
func (handler *Handler) GetDaySlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDaySlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.DaySlots(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get day slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Day slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetGrid reports slot occupancy for every active room on a day.
// @Summary Get the availability grid
// @Description Report slot occupancy for every active room on a day.
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.GridResponse] "Availability grid"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/grid [get]
// @Security BearerAuth
func (handler *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGrid")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.Grid(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability grid")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability grid retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
