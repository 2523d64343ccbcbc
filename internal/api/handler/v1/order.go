package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/config"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/metrics"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/service"
)

type OrderService interface {
	ListOrders(ctx context.Context, caller domain.Principal, page domain.PageRequest) (domain.Page[domain.Order], error)
	GetOrder(ctx context.Context, caller domain.Principal, id uint) (domain.Order, error)
	CreateOrder(ctx context.Context, caller domain.Principal, tickets []domain.Ticket) (domain.Order, error)
	ReplaceTickets(ctx context.Context, caller domain.Principal, id uint, tickets []domain.Ticket) (domain.Order, error)
	DeleteOrder(ctx context.Context, caller domain.Principal, id uint) error
}

type OrderHandler struct {
	conf    *config.APIConfig
	svc     OrderService
	metrics *metrics.Registry
}

func NewOrderHandler(conf *config.APIConfig, svc OrderService, reg *metrics.Registry) *OrderHandler {
	return &OrderHandler{
		conf:    conf,
		svc:     svc,
		metrics: reg,
	}
}

// HandleListOrders godoc
// @Summary      List the caller's orders, newest first
// @Tags         orders
// @Produce      json
// @Param        page       query  int  false  "page number"
// @Param        page_size  query  int  false  "page size"
// @Success      200  {object}  response.Page[response.OrderListItem]
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders [get]
// @Security BearerAuth
func (h *OrderHandler) HandleListOrders(ctx *gin.Context) {
	principal, errResp := getPrincipalFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)
		return
	}

	page, ok := parsePage(ctx, h.conf)
	if !ok {
		return
	}

	orders, err := h.svc.ListOrders(ctx.Request.Context(), principal, page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrders -> h.svc.ListOrders -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPage(ctx.Request, page, orders, response.NewOrderListItem))
}

// HandleGetOrder godoc
// @Summary      Get one of the caller's orders
// @Tags         orders
// @Produce      json
// @Param        orderID  path  int  true  "order ID"
// @Success      200  {object}  response.Order
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders/{orderID} [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetOrder(ctx *gin.Context) {
	principal, errResp := getPrincipalFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)
		return
	}

	id, ok := parseID(ctx, "orderID")
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), principal, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOrder -> h.svc.GetOrder", err, "order", id, service.ErrOrderNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrder(order))
}

// HandleCreateOrder godoc
// @Summary      Buy tickets
// @Description  Creates an order with all its tickets, or nothing at all.
// @Tags         orders
// @Produce      json
// @Param        request  body  request.OrderRequest  true  "request body"
// @Success      201  {object}  response.Order
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders [post]
// @Security BearerAuth
func (h *OrderHandler) HandleCreateOrder(ctx *gin.Context) {
	principal, errResp := getPrincipalFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)
		return
	}

	var req request.OrderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), principal, req.ToDomain())
	if err != nil {
		h.renderOrderErr(ctx, "v1.HandleCreateOrder -> h.svc.CreateOrder", err, 0)
		return
	}

	h.metrics.OrdersCreatedTotal.Inc()
	h.metrics.TicketsSoldTotal.Add(float64(len(order.Tickets)))

	ctx.JSON(http.StatusCreated, response.NewOrder(order))
}

// HandleUpdateOrder godoc
// @Summary      Replace the tickets of an order
// @Tags         orders
// @Produce      json
// @Param        orderID  path  int                   true  "order ID"
// @Param        request  body  request.OrderRequest  true  "request body"
// @Success      200  {object}  response.Order
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders/{orderID} [put]
// @Security BearerAuth
func (h *OrderHandler) HandleUpdateOrder(ctx *gin.Context) {
	principal, errResp := getPrincipalFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)
		return
	}

	id, ok := parseID(ctx, "orderID")
	if !ok {
		return
	}

	var req request.OrderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	order, err := h.svc.ReplaceTickets(ctx.Request.Context(), principal, id, req.ToDomain())
	if err != nil {
		h.renderOrderErr(ctx, "v1.HandleUpdateOrder -> h.svc.ReplaceTickets", err, id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrder(order))
}

// HandlePartialUpdateOrder godoc
// @Summary      Replace the tickets of an order when tickets are given
// @Tags         orders
// @Produce      json
// @Param        orderID  path  int                   true  "order ID"
// @Param        request  body  request.OrderRequest  true  "request body"
// @Success      200  {object}  response.Order
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders/{orderID} [patch]
// @Security BearerAuth
func (h *OrderHandler) HandlePartialUpdateOrder(ctx *gin.Context) {
	principal, errResp := getPrincipalFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)
		return
	}

	id, ok := parseID(ctx, "orderID")
	if !ok {
		return
	}

	var req request.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if req.Tickets == nil {
		order, err := h.svc.GetOrder(ctx.Request.Context(), principal, id)
		if err != nil {
			renderServiceErr(ctx, "v1.HandlePartialUpdateOrder -> h.svc.GetOrder", err, "order", id, service.ErrOrderNotFound)
			return
		}

		ctx.JSON(http.StatusOK, response.NewOrder(order))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	order, err := h.svc.ReplaceTickets(ctx.Request.Context(), principal, id, req.ToDomain())
	if err != nil {
		h.renderOrderErr(ctx, "v1.HandlePartialUpdateOrder -> h.svc.ReplaceTickets", err, id)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrder(order))
}

// HandleDeleteOrder godoc
// @Summary      Delete an order and release its seats
// @Tags         orders
// @Param        orderID  path  int  true  "order ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /orders/{orderID} [delete]
// @Security BearerAuth
func (h *OrderHandler) HandleDeleteOrder(ctx *gin.Context) {
	principal, errResp := getPrincipalFromContext(ctx)
	if errResp != nil {
		response.RenderErr(ctx, errResp)
		return
	}

	id, ok := parseID(ctx, "orderID")
	if !ok {
		return
	}

	if err := h.svc.DeleteOrder(ctx.Request.Context(), principal, id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteOrder -> h.svc.DeleteOrder", err, "order", id, service.ErrOrderNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *OrderHandler) renderOrderErr(ctx *gin.Context, op string, err error, id uint) {
	if errors.Is(err, service.ErrTicketTaken) {
		h.metrics.SeatConflictsTotal.Inc()
		response.RenderErr(ctx, response.ErrConflict(err))
		return
	}

	renderServiceErr(ctx, op, err, "order", id, service.ErrOrderNotFound)
}
