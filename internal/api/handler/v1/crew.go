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

type CrewService interface {
	ListCrew(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Crew], error)
	GetCrew(ctx context.Context, id uint) (domain.Crew, error)
	CreateCrew(ctx context.Context, crew domain.Crew) (domain.Crew, error)
	UpdateCrew(ctx context.Context, crew domain.Crew) (domain.Crew, error)
	DeleteCrew(ctx context.Context, id uint) error
}

type CrewHandler struct {
	conf *config.APIConfig
	svc  CrewService
}

func NewCrewHandler(conf *config.APIConfig, svc CrewService) *CrewHandler {
	return &CrewHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListCrew godoc
// @Summary      List crew members ordered by last name
// @Tags         crew
// @Produce      json
// @Param        page       query  int  false  "page number"
// @Param        page_size  query  int  false  "page size"
// @Success      200  {object}  response.Page[response.Crew]
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew [get]
// @Security BearerAuth
func (h *CrewHandler) HandleListCrew(ctx *gin.Context) {
	page, ok := parsePage(ctx, h.conf)
	if !ok {
		return
	}

	crew, err := h.svc.ListCrew(ctx.Request.Context(), page)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCrew -> h.svc.ListCrew -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPage(ctx.Request, page, crew, response.NewCrew))
}

// HandleGetCrew godoc
// @Summary      Get a crew member
// @Tags         crew
// @Produce      json
// @Param        crewID  path  int  true  "crew ID"
// @Success      200  {object}  response.Crew
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew/{crewID} [get]
// @Security BearerAuth
func (h *CrewHandler) HandleGetCrew(ctx *gin.Context) {
	id, ok := parseID(ctx, "crewID")
	if !ok {
		return
	}

	crew, err := h.svc.GetCrew(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetCrew -> h.svc.GetCrew", err, "crew", id, service.ErrCrewNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCrew(crew))
}

// HandleCreateCrew godoc
// @Summary      Create a crew member
// @Tags         crew
// @Produce      json
// @Param        request  body  request.CrewRequest  true  "request body"
// @Success      201  {object}  response.Crew
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew [post]
// @Security BearerAuth
func (h *CrewHandler) HandleCreateCrew(ctx *gin.Context) {
	var req request.CrewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	crew, err := h.svc.CreateCrew(ctx.Request.Context(), req.Apply(domain.Crew{}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateCrew -> h.svc.CreateCrew", err, "crew", 0, nil)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCrew(crew))
}

// HandleUpdateCrew godoc
// @Summary      Replace a crew member
// @Tags         crew
// @Produce      json
// @Param        crewID   path  int                  true  "crew ID"
// @Param        request  body  request.CrewRequest  true  "request body"
// @Success      200  {object}  response.Crew
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew/{crewID} [put]
// @Security BearerAuth
func (h *CrewHandler) HandleUpdateCrew(ctx *gin.Context) {
	id, ok := parseID(ctx, "crewID")
	if !ok {
		return
	}

	var req request.CrewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	crew, err := h.svc.UpdateCrew(ctx.Request.Context(), req.Apply(domain.Crew{ID: id}))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateCrew -> h.svc.UpdateCrew", err, "crew", id, service.ErrCrewNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCrew(crew))
}

// HandlePartialUpdateCrew godoc
// @Summary      Update some fields of a crew member
// @Tags         crew
// @Produce      json
// @Param        crewID   path  int                  true  "crew ID"
// @Param        request  body  request.CrewRequest  true  "request body"
// @Success      200  {object}  response.Crew
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew/{crewID} [patch]
// @Security BearerAuth
func (h *CrewHandler) HandlePartialUpdateCrew(ctx *gin.Context) {
	id, ok := parseID(ctx, "crewID")
	if !ok {
		return
	}

	var req request.CrewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	existing, err := h.svc.GetCrew(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateCrew -> h.svc.GetCrew", err, "crew", id, service.ErrCrewNotFound)
		return
	}

	crew, err := h.svc.UpdateCrew(ctx.Request.Context(), req.Apply(existing))
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePartialUpdateCrew -> h.svc.UpdateCrew", err, "crew", id, service.ErrCrewNotFound)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCrew(crew))
}

// HandleDeleteCrew godoc
// @Summary      Delete a crew member and remove it from its flights
// @Tags         crew
// @Param        crewID  path  int  true  "crew ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /crew/{crewID} [delete]
// @Security BearerAuth
func (h *CrewHandler) HandleDeleteCrew(ctx *gin.Context) {
	id, ok := parseID(ctx, "crewID")
	if !ok {
		return
	}

	if err := h.svc.DeleteCrew(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteCrew -> h.svc.DeleteCrew", err, "crew", id, service.ErrCrewNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}
