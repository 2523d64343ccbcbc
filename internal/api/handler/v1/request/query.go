package request

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
)

const dateLayout = "2006-01-02"

var errNotPositiveInt = errors.New("must be a positive integer")

// ParseID reads a positive numeric path parameter.
func ParseID(ctx *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, validation.Errors{param: errNotPositiveInt}
	}

	return uint(id), nil
}

// ParsePage reads page and page_size, defaulting to the first page of
// defaultSize items and capping the size at maxSize.
func ParsePage(ctx *gin.Context, defaultSize, maxSize int) (domain.PageRequest, error) {
	page := domain.PageRequest{Page: 1, Size: defaultSize}
	errs := validation.Errors{}

	if raw := ctx.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs["page"] = errNotPositiveInt
		}
		page.Page = n
	}
	if raw := ctx.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs["page_size"] = errNotPositiveInt
		}
		page.Size = n
	}
	if err := errs.Filter(); err != nil {
		return domain.PageRequest{}, err
	}

	if page.Size > maxSize {
		page.Size = maxSize
	}

	return page, nil
}

func ParseAirplaneFilter(ctx *gin.Context) domain.AirplaneFilter {
	return domain.AirplaneFilter{
		Name: ctx.Query("name"),
		Type: ctx.Query("type"),
	}
}

func ParseRouteFilter(ctx *gin.Context) domain.RouteFilter {
	return domain.RouteFilter{
		Source:      ctx.Query("source"),
		Destination: ctx.Query("destination"),
	}
}

// ParseFlightFilter reads date (YYYY-MM-DD, UTC), source and destination.
func ParseFlightFilter(ctx *gin.Context) (domain.FlightFilter, error) {
	filter := domain.FlightFilter{
		Source:      ctx.Query("source"),
		Destination: ctx.Query("destination"),
	}

	if raw := ctx.Query("date"); raw != "" {
		date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return domain.FlightFilter{}, validation.Errors{
				"date": fmt.Errorf("date has wrong format, use %s", "YYYY-MM-DD"),
			}
		}
		filter.Date = &date
	}

	return filter, nil
}
