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

type AirportService interface {
	ListAirports(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Airport], error)
	GetAirport(ctx context.Context, id uint) (domain.Airport, error)
	CreateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	UpdateAirport(ctx context.Context, airport domain.Airport) (domain.Airport, error)
	DeleteAirport(ctx context.Context, id uint) error
}

type AirportHandler struct {
	conf *config.APIConfig
	svc  AirportService
}

func NewAirportHandler(conf *config.APIConfig, svc AirportService) *AirportHandler {
	return &AirportHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListAirports godoc
// @Summary      List airports ordered by name
// @Tags         airports
// @Produce      json
// @Param        page       query  int  false  "page number"
// @Param        page_size  query  int  false  "page size"
// @Success      200  {object}  response.Page[response.Airport]
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports [get]
// @Security BearerAuth
func (h *AirportHandler) HandleListAirports(ctx *gin.Context) {
	page, ok := parsePage(ctx, h.conf)
	if !ok {
		return
	}

	airports, err := h.svc.ListAirports(ctx.Request.Context(), page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAirports -> h.svc.ListAirports -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPage(ctx.Request, page, airports, response.NewAirport))
}

// HandleGetAirport godoc
// @Summary      Get an airport
// @Tags         airports
// @Produce      json
// @Param        airportID  path  int  true  "airport ID"
// @Success      200  {object}  response.Airport
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports/{airportID} [get]
// @Security BearerAuth
func (h *AirportHandler) HandleGetAirport(ctx *gin.Context) {
	id, ok := parseID(ctx, "airportID")
	if !ok {
		return
	}

	airport, err := h.svc.GetAirport(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetAirport -> h.svc.GetAirport", err, "airport", id, service.ErrAirportNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirport(airport))
}

// HandleCreateAirport godoc
// @Summary      Create an airport
// @Tags         airports
// @Produce      json
// @Param        request  body  request.AirportRequest  true  "request body"
// @Success      201  {object}  response.Airport
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports [post]
// @Security BearerAuth
func (h *AirportHandler) HandleCreateAirport(ctx *gin.Context) {
	var req request.AirportRequest
	if !bindJSON(ctx, &req) {
		return
	}

	airport, err := h.svc.CreateAirport(ctx.Request.Context(), req.Apply(domain.Airport{}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateAirport -> h.svc.CreateAirport", err, "airport", 0, nil)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewAirport(airport))
}

// HandleUpdateAirport godoc
// @Summary      Replace an airport
// @Tags         airports
// @Produce      json
// @Param        airportID   path  int                  true  "airport ID"
// @Param        request  body  request.AirportRequest  true  "request body"
// @Success      200  {object}  response.Airport
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports/{airportID} [put]
// @Security BearerAuth
func (h *AirportHandler) HandleUpdateAirport(ctx *gin.Context) {
	id, ok := parseID(ctx, "airportID")
	if !ok {
		return
	}

	var req request.AirportRequest
	if !bindJSON(ctx, &req) {
		return
	}

	airport, err := h.svc.UpdateAirport(ctx.Request.Context(), req.Apply(domain.Airport{ID: id}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateAirport -> h.svc.UpdateAirport", err, "airport", id, service.ErrAirportNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirport(airport))
}

// HandlePartialUpdateAirport godoc
// @Summary      Update some fields of an airport
// @Tags         airports
// @Produce      json
// @Param        airportID   path  int                  true  "airport ID"
// @Param        request  body  request.AirportRequest  true  "request body"
// @Success      200  {object}  response.Airport
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports/{airportID} [patch]
// @Security BearerAuth
func (h *AirportHandler) HandlePartialUpdateAirport(ctx *gin.Context) {
	id, ok := parseID(ctx, "airportID")
	if !ok {
		return
	}

	var req request.AirportRequest
	if !bindJSON(ctx, &req) {
		return
	}

	existing, err := h.svc.GetAirport(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateAirport -> h.svc.GetAirport", err, "airport", id, service.ErrAirportNotFound)
		return
	}

	airport, err := h.svc.UpdateAirport(ctx.Request.Context(), req.Apply(existing))
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateAirport -> h.svc.UpdateAirport", err, "airport", id, service.ErrAirportNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirport(airport))
}

// HandleDeleteAirport godoc
// @Summary      Delete an airport together with its routes
// @Tags         airports
// @Param        airportID  path  int  true  "airport ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airports/{airportID} [delete]
// @Security BearerAuth
func (h *AirportHandler) HandleDeleteAirport(ctx *gin.Context) {
	id, ok := parseID(ctx, "airportID")
	if !ok {
		return
	}

	if err := h.svc.DeleteAirport(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteAirport -> h.svc.DeleteAirport", err, "airport", id, service.ErrAirportNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}
