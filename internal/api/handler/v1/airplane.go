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

type AirplaneService interface {
	ListAirplanes(ctx context.Context, filter domain.AirplaneFilter, page domain.PageRequest) (domain.Page[domain.Airplane], error)
	GetAirplane(ctx context.Context, id uint) (domain.Airplane, error)
	CreateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	UpdateAirplane(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error)
	DeleteAirplane(ctx context.Context, id uint) error
}

type AirplaneHandler struct {
	conf *config.APIConfig
	svc  AirplaneService
}

func NewAirplaneHandler(conf *config.APIConfig, svc AirplaneService) *AirplaneHandler {
	return &AirplaneHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListAirplanes godoc
// @Summary      List airplanes ordered by name
// @Tags         airplanes
// @Produce      json
// @Param        name       query  string  false  "airplane name contains (case-insensitive)"
// @Param        type       query  string  false  "airplane type name contains (case-insensitive)"
// @Param        page       query  int  false  "page number"
// @Param        page_size  query  int  false  "page size"
// @Success      200  {object}  response.Page[response.AirplaneListItem]
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes [get]
// @Security BearerAuth
func (h *AirplaneHandler) HandleListAirplanes(ctx *gin.Context) {
	page, ok := parsePage(ctx, h.conf)
	if !ok {
		return
	}

	airplanes, err := h.svc.ListAirplanes(ctx.Request.Context(), request.ParseAirplaneFilter(ctx), page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAirplanes -> h.svc.ListAirplanes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPage(ctx.Request, page, airplanes, response.NewAirplaneListItem))
}

// HandleGetAirplane godoc
// @Summary      Get an airplane
// @Tags         airplanes
// @Produce      json
// @Param        airplaneID  path  int  true  "airplane ID"
// @Success      200  {object}  response.Airplane
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes/{airplaneID} [get]
// @Security BearerAuth
func (h *AirplaneHandler) HandleGetAirplane(ctx *gin.Context) {
	id, ok := parseID(ctx, "airplaneID")
	if !ok {
		return
	}

	airplane, err := h.svc.GetAirplane(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetAirplane -> h.svc.GetAirplane", err, "airplane", id, service.ErrAirplaneNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplane(airplane))
}

// HandleCreateAirplane godoc
// @Summary      Create an airplane
// @Tags         airplanes
// @Produce      json
// @Param        request  body  request.AirplaneRequest  true  "request body"
// @Success      201  {object}  response.Airplane
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes [post]
// @Security BearerAuth
func (h *AirplaneHandler) HandleCreateAirplane(ctx *gin.Context) {
	var req request.AirplaneRequest
	if !bindJSON(ctx, &req) {
		return
	}

	airplane, err := h.svc.CreateAirplane(ctx.Request.Context(), req.Apply(domain.Airplane{}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateAirplane -> h.svc.CreateAirplane", err, "airplane", 0, nil)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewAirplane(airplane))
}

// HandleUpdateAirplane godoc
// @Summary      Replace an airplane
// @Tags         airplanes
// @Produce      json
// @Param        airplaneID   path  int                  true  "airplane ID"
// @Param        request  body  request.AirplaneRequest  true  "request body"
// @Success      200  {object}  response.Airplane
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes/{airplaneID} [put]
// @Security BearerAuth
func (h *AirplaneHandler) HandleUpdateAirplane(ctx *gin.Context) {
	id, ok := parseID(ctx, "airplaneID")
	if !ok {
		return
	}

	var req request.AirplaneRequest
	if !bindJSON(ctx, &req) {
		return
	}

	airplane, err := h.svc.UpdateAirplane(ctx.Request.Context(), req.Apply(domain.Airplane{ID: id}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateAirplane -> h.svc.UpdateAirplane", err, "airplane", id, service.ErrAirplaneNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplane(airplane))
}

// HandlePartialUpdateAirplane godoc
// @Summary      Update some fields of an airplane
// @Tags         airplanes
// @Produce      json
// @Param        airplaneID   path  int                  true  "airplane ID"
// @Param        request  body  request.AirplaneRequest  true  "request body"
// @Success      200  {object}  response.Airplane
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes/{airplaneID} [patch]
// @Security BearerAuth
func (h *AirplaneHandler) HandlePartialUpdateAirplane(ctx *gin.Context) {
	id, ok := parseID(ctx, "airplaneID")
	if !ok {
		return
	}

	var req request.AirplaneRequest
	if !bindJSON(ctx, &req) {
		return
	}

	existing, err := h.svc.GetAirplane(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateAirplane -> h.svc.GetAirplane", err, "airplane", id, service.ErrAirplaneNotFound)
		return
	}

	airplane, err := h.svc.UpdateAirplane(ctx.Request.Context(), req.Apply(existing))
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateAirplane -> h.svc.UpdateAirplane", err, "airplane", id, service.ErrAirplaneNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplane(airplane))
}

// HandleDeleteAirplane godoc
// @Summary      Delete an airplane together with its flights
// @Tags         airplanes
// @Param        airplaneID  path  int  true  "airplane ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplanes/{airplaneID} [delete]
// @Security BearerAuth
func (h *AirplaneHandler) HandleDeleteAirplane(ctx *gin.Context) {
	id, ok := parseID(ctx, "airplaneID")
	if !ok {
		return
	}

	if err := h.svc.DeleteAirplane(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteAirplane -> h.svc.DeleteAirplane", err, "airplane", id, service.ErrAirplaneNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}
