package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/config"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/service"
)

var errNoPrincipal = errors.New("no authenticated user in request context")

func getPrincipalFromContext(ctx *gin.Context) (domain.Principal, *response.Err) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		return domain.Principal{}, response.ErrUnauthorized(errNoPrincipal)
	}

	return principal, nil
}

func parsePage(ctx *gin.Context, conf *config.APIConfig) (domain.PageRequest, bool) {
	page, err := request.ParsePage(ctx, conf.PageSize, conf.MaxPageSize)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return domain.PageRequest{}, false
	}

	return page, true
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := request.ParseID(ctx, param)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return 0, false
	}

	return id, true
}

// bindJSON decodes the body into req and runs its own validation, if any.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false
	}

	if v, ok := req.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return false
		}
	}

	return true
}

// renderServiceErr maps an error returned by a service call on a single
// resource onto the HTTP error for it.
func renderServiceErr(ctx *gin.Context, op string, err error, resource string, id uint, notFound error) {
	switch {
	case service.IsValidationError(err):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case notFound != nil && errors.Is(err, notFound):
		response.RenderErr(ctx, response.ErrNotFound(resource, "ID", id))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}
