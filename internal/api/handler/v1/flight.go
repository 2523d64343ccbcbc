package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/config"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/service"
)

type FlightService interface {
	ListFlights(ctx context.Context, filter domain.FlightFilter, page domain.PageRequest) (domain.Page[domain.Flight], error)
	GetFlight(ctx context.Context, id uint) (domain.Flight, error)
	CreateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	UpdateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error)
	DeleteFlight(ctx context.Context, id uint) error
}

type FlightHandler struct {
	conf *config.APIConfig
	svc  FlightService
}

func NewFlightHandler(conf *config.APIConfig, svc FlightService) *FlightHandler {
	return &FlightHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListFlights godoc
// @Summary      List flights with the number of tickets still available
// @Tags         flights
// @Produce      json
// @Param        date         query  string  false  "departure date, YYYY-MM-DD (UTC)"
// @Param        source       query  string  false  "source airport name contains (case-insensitive)"
// @Param        destination  query  string  false  "destination airport name contains (case-insensitive)"
// @Param        page       query  int  false  "page number"
// @Param        page_size  query  int  false  "page size"
// @Success      200  {object}  response.Page[response.FlightListItem]
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights [get]
func (h *FlightHandler) HandleListFlights(ctx *gin.Context) {
	filter, err := request.ParseFlightFilter(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	page, ok := parsePage(ctx, h.conf)
	if !ok {
		return
	}

	flights, err := h.svc.ListFlights(ctx.Request.Context(), filter, page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListFlights -> h.svc.ListFlights -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPage(ctx.Request, page, flights, response.NewFlightListItem))
}

// HandleGetFlight godoc
// @Summary      Get a flight with its route, airplane and crew
// @Tags         flights
// @Produce      json
// @Param        flightID  path  int  true  "flight ID"
// @Success      200  {object}  response.FlightDetail
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights/{flightID} [get]
func (h *FlightHandler) HandleGetFlight(ctx *gin.Context) {
	id, ok := parseID(ctx, "flightID")
	if !ok {
		return
	}

	flight, err := h.svc.GetFlight(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetFlight -> h.svc.GetFlight", err, "flight", id, service.ErrFlightNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewFlightDetail(flight))
}

// HandleCreateFlight godoc
// @Summary      Create a flight
// @Tags         flights
// @Produce      json
// @Param        request  body  request.FlightRequest  true  "request body"
// @Success      201  {object}  response.Flight
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights [post]
// @Security BearerAuth
func (h *FlightHandler) HandleCreateFlight(ctx *gin.Context) {
	var req request.FlightRequest
	if !bindJSON(ctx, &req) {
		return
	}

	flight, err := h.svc.CreateFlight(ctx.Request.Context(), req.Apply(domain.Flight{}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateFlight -> h.svc.CreateFlight", err, "flight", 0, nil)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewFlight(flight))
}

// HandleUpdateFlight godoc
// @Summary      Replace a flight
// @Tags         flights
// @Produce      json
// @Param        flightID  path  int                    true  "flight ID"
// @Param        request   body  request.FlightRequest  true  "request body"
// @Success      200  {object}  response.Flight
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights/{flightID} [put]
// @Security BearerAuth
func (h *FlightHandler) HandleUpdateFlight(ctx *gin.Context) {
	id, ok := parseID(ctx, "flightID")
	if !ok {
		return
	}

	var req request.FlightRequest
	if !bindJSON(ctx, &req) {
		return
	}

	flight, err := h.svc.UpdateFlight(ctx.Request.Context(), req.Apply(domain.Flight{ID: id}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateFlight -> h.svc.UpdateFlight", err, "flight", id, service.ErrFlightNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewFlight(flight))
}

// HandlePartialUpdateFlight godoc
// @Summary      Update some fields of a flight
// @Tags         flights
// @Produce      json
// @Param        flightID  path  int                    true  "flight ID"
// @Param        request   body  request.FlightRequest  true  "request body"
// @Success      200  {object}  response.Flight
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights/{flightID} [patch]
// @Security BearerAuth
func (h *FlightHandler) HandlePartialUpdateFlight(ctx *gin.Context) {
	id, ok := parseID(ctx, "flightID")
	if !ok {
		return
	}

	var req request.FlightRequest
	if !bindJSON(ctx, &req) {
		return
	}

	existing, err := h.svc.GetFlight(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateFlight -> h.svc.GetFlight", err, "flight", id, service.ErrFlightNotFound)
		return
	}

	flight, err := h.svc.UpdateFlight(ctx.Request.Context(), req.Apply(existing))
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateFlight -> h.svc.UpdateFlight", err, "flight", id, service.ErrFlightNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewFlight(flight))
}

// HandleDeleteFlight godoc
// @Summary      Delete a flight together with its tickets
// @Tags         flights
// @Param        flightID  path  int  true  "flight ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /flights/{flightID} [delete]
// @Security BearerAuth
func (h *FlightHandler) HandleDeleteFlight(ctx *gin.Context) {
	id, ok := parseID(ctx, "flightID")
	if !ok {
		return
	}

	if err := h.svc.DeleteFlight(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteFlight -> h.svc.DeleteFlight", err, "flight", id, service.ErrFlightNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}
