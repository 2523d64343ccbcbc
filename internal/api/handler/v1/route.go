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

type RouteService interface {
	ListRoutes(ctx context.Context, filter domain.RouteFilter, page domain.PageRequest) (domain.Page[domain.Route], error)
	GetRoute(ctx context.Context, id uint) (domain.Route, error)
	CreateRoute(ctx context.Context, route domain.Route) (domain.Route, error)
	UpdateRoute(ctx context.Context, route domain.Route) (domain.Route, error)
	DeleteRoute(ctx context.Context, id uint) error
}

type RouteHandler struct {
	conf *config.APIConfig
	svc  RouteService
}

func NewRouteHandler(conf *config.APIConfig, svc RouteService) *RouteHandler {
	return &RouteHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListRoutes godoc
// @Summary      List routes
// @Tags         routes
// @Produce      json
// @Param        source       query  string  false  "source airport closest big city contains (case-insensitive)"
// @Param        destination  query  string  false  "destination airport closest big city contains (case-insensitive)"
// @Param        page       query  int  false  "page number"
// @Param        page_size  query  int  false  "page size"
// @Success      200  {object}  response.Page[response.RouteListItem]
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes [get]
// @Security BearerAuth
func (h *RouteHandler) HandleListRoutes(ctx *gin.Context) {
	page, ok := parsePage(ctx, h.conf)
	if !ok {
		return
	}

	routes, err := h.svc.ListRoutes(ctx.Request.Context(), request.ParseRouteFilter(ctx), page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListRoutes -> h.svc.ListRoutes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPage(ctx.Request, page, routes, response.NewRouteListItem))
}

// HandleGetRoute godoc
// @Summary      Get a route
// @Tags         routes
// @Produce      json
// @Param        routeID  path  int  true  "route ID"
// @Success      200  {object}  response.Route
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes/{routeID} [get]
// @Security BearerAuth
func (h *RouteHandler) HandleGetRoute(ctx *gin.Context) {
	id, ok := parseID(ctx, "routeID")
	if !ok {
		return
	}

	route, err := h.svc.GetRoute(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetRoute -> h.svc.GetRoute", err, "route", id, service.ErrRouteNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewRoute(route))
}

// HandleCreateRoute godoc
// @Summary      Create a route
// @Tags         routes
// @Produce      json
// @Param        request  body  request.RouteRequest  true  "request body"
// @Success      201  {object}  response.Route
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes [post]
// @Security BearerAuth
func (h *RouteHandler) HandleCreateRoute(ctx *gin.Context) {
	var req request.RouteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	route, err := h.svc.CreateRoute(ctx.Request.Context(), req.Apply(domain.Route{}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateRoute -> h.svc.CreateRoute", err, "route", 0, nil)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewRoute(route))
}

// HandleUpdateRoute godoc
// @Summary      Replace a route
// @Tags         routes
// @Produce      json
// @Param        routeID   path  int                  true  "route ID"
// @Param        request  body  request.RouteRequest  true  "request body"
// @Success      200  {object}  response.Route
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes/{routeID} [put]
// @Security BearerAuth
func (h *RouteHandler) HandleUpdateRoute(ctx *gin.Context) {
	id, ok := parseID(ctx, "routeID")
	if !ok {
		return
	}

	var req request.RouteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	route, err := h.svc.UpdateRoute(ctx.Request.Context(), req.Apply(domain.Route{ID: id}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateRoute -> h.svc.UpdateRoute", err, "route", id, service.ErrRouteNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewRoute(route))
}

// HandlePartialUpdateRoute godoc
// @Summary      Update some fields of a route
// @Tags         routes
// @Produce      json
// @Param        routeID   path  int                  true  "route ID"
// @Param        request  body  request.RouteRequest  true  "request body"
// @Success      200  {object}  response.Route
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes/{routeID} [patch]
// @Security BearerAuth
func (h *RouteHandler) HandlePartialUpdateRoute(ctx *gin.Context) {
	id, ok := parseID(ctx, "routeID")
	if !ok {
		return
	}

	var req request.RouteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	existing, err := h.svc.GetRoute(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateRoute -> h.svc.GetRoute", err, "route", id, service.ErrRouteNotFound)
		return
	}

	route, err := h.svc.UpdateRoute(ctx.Request.Context(), req.Apply(existing))
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateRoute -> h.svc.UpdateRoute", err, "route", id, service.ErrRouteNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewRoute(route))
}

// HandleDeleteRoute godoc
// @Summary      Delete a route together with its flights
// @Tags         routes
// @Param        routeID  path  int  true  "route ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /routes/{routeID} [delete]
// @Security BearerAuth
func (h *RouteHandler) HandleDeleteRoute(ctx *gin.Context) {
	id, ok := parseID(ctx, "routeID")
	if !ok {
		return
	}

	if err := h.svc.DeleteRoute(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteRoute -> h.svc.DeleteRoute", err, "route", id, service.ErrRouteNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}
