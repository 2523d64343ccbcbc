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

type AirplaneTypeService interface {
	ListAirplaneTypes(ctx context.Context, page domain.PageRequest) (domain.Page[domain.AirplaneType], error)
	GetAirplaneType(ctx context.Context, id uint) (domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	UpdateAirplaneType(ctx context.Context, airplaneType domain.AirplaneType) (domain.AirplaneType, error)
	DeleteAirplaneType(ctx context.Context, id uint) error
}

type AirplaneTypeHandler struct {
	conf *config.APIConfig
	svc  AirplaneTypeService
}

func NewAirplaneTypeHandler(conf *config.APIConfig, svc AirplaneTypeService) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListAirplaneTypes godoc
// @Summary      List airplane types ordered by name
// @Tags         airplane-types
// @Produce      json
// @Param        page       query  int  false  "page number"
// @Param        page_size  query  int  false  "page size"
// @Success      200  {object}  response.Page[response.AirplaneType]
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types [get]
// @Security BearerAuth
func (h *AirplaneTypeHandler) HandleListAirplaneTypes(ctx *gin.Context) {
	page, ok := parsePage(ctx, h.conf)
	if !ok {
		return
	}

	types, err := h.svc.ListAirplaneTypes(ctx.Request.Context(), page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAirplaneTypes -> h.svc.ListAirplaneTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPage(ctx.Request, page, types, response.NewAirplaneType))
}

// HandleGetAirplaneType godoc
// @Summary      Get an airplane type
// @Tags         airplane-types
// @Produce      json
// @Param        airplaneTypeID  path  int  true  "airplane type ID"
// @Success      200  {object}  response.AirplaneType
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types/{airplaneTypeID} [get]
// @Security BearerAuth
func (h *AirplaneTypeHandler) HandleGetAirplaneType(ctx *gin.Context) {
	id, ok := parseID(ctx, "airplaneTypeID")
	if !ok {
		return
	}

	airplaneType, err := h.svc.GetAirplaneType(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetAirplaneType -> h.svc.GetAirplaneType", err, "airplane type", id, service.ErrAirplaneTypeNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplaneType(airplaneType))
}

// HandleCreateAirplaneType godoc
// @Summary      Create an airplane type
// @Tags         airplane-types
// @Produce      json
// @Param        request  body  request.AirplaneTypeRequest  true  "request body"
// @Success      201  {object}  response.AirplaneType
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types [post]
// @Security BearerAuth
func (h *AirplaneTypeHandler) HandleCreateAirplaneType(ctx *gin.Context) {
	var req request.AirplaneTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	airplaneType, err := h.svc.CreateAirplaneType(ctx.Request.Context(), req.Apply(domain.AirplaneType{}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateAirplaneType -> h.svc.CreateAirplaneType", err, "airplane type", 0, nil)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewAirplaneType(airplaneType))
}

// HandleUpdateAirplaneType godoc
// @Summary      Replace an airplane type
// @Tags         airplane-types
// @Produce      json
// @Param        airplaneTypeID   path  int                  true  "airplane type ID"
// @Param        request  body  request.AirplaneTypeRequest  true  "request body"
// @Success      200  {object}  response.AirplaneType
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types/{airplaneTypeID} [put]
// @Security BearerAuth
func (h *AirplaneTypeHandler) HandleUpdateAirplaneType(ctx *gin.Context) {
	id, ok := parseID(ctx, "airplaneTypeID")
	if !ok {
		return
	}

	var req request.AirplaneTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	airplaneType, err := h.svc.UpdateAirplaneType(ctx.Request.Context(), req.Apply(domain.AirplaneType{ID: id}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateAirplaneType -> h.svc.UpdateAirplaneType", err, "airplane type", id, service.ErrAirplaneTypeNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplaneType(airplaneType))
}

// HandlePartialUpdateAirplaneType godoc
// @Summary      Update some fields of an airplane type
// @Tags         airplane-types
// @Produce      json
// @Param        airplaneTypeID   path  int                  true  "airplane type ID"
// @Param        request  body  request.AirplaneTypeRequest  true  "request body"
// @Success      200  {object}  response.AirplaneType
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types/{airplaneTypeID} [patch]
// @Security BearerAuth
func (h *AirplaneTypeHandler) HandlePartialUpdateAirplaneType(ctx *gin.Context) {
	id, ok := parseID(ctx, "airplaneTypeID")
	if !ok {
		return
	}

	var req request.AirplaneTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	existing, err := h.svc.GetAirplaneType(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateAirplaneType -> h.svc.GetAirplaneType", err, "airplane type", id, service.ErrAirplaneTypeNotFound)
		return
	}

	airplaneType, err := h.svc.UpdateAirplaneType(ctx.Request.Context(), req.Apply(existing))
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateAirplaneType -> h.svc.UpdateAirplaneType", err, "airplane type", id, service.ErrAirplaneTypeNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAirplaneType(airplaneType))
}

// HandleDeleteAirplaneType godoc
// @Summary      Delete an airplane type together with its airplanes
// @Tags         airplane-types
// @Param        airplaneTypeID  path  int  true  "airplane type ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /airplane-types/{airplaneTypeID} [delete]
// @Security BearerAuth
func (h *AirplaneTypeHandler) HandleDeleteAirplaneType(ctx *gin.Context) {
	id, ok := parseID(ctx, "airplaneTypeID")
	if !ok {
		return
	}

	if err := h.svc.DeleteAirplaneType(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteAirplaneType -> h.svc.DeleteAirplaneType", err, "airplane type", id, service.ErrAirplaneTypeNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}
