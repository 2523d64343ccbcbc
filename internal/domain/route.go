package domain

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	errSameEndpoints       = errors.New("source and destination cannot be the same")
	errDistanceNotPositive = errors.New("distance should be greater than 0")
)

// Route is a directed pairing of two airports.
type Route struct {
	ID            uint    `json:"id"`
	SourceID      uint    `json:"source"`
	DestinationID uint    `json:"destination"`
	Distance      int     `json:"distance"`
	Source        Airport `json:"-"`
	Destination   Airport `json:"-"`
}

func (r Route) String() string {
	return fmt.Sprintf("%s to %s", r.Source, r.Destination)
}

func (r Route) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.SourceID, validation.Required),
		validation.Field(&r.DestinationID, validation.Required, validation.By(r.differentFromSource)),
		validation.Field(&r.Distance, validation.By(positive(errDistanceNotPositive))),
	)
}

func (r Route) differentFromSource(value interface{}) error {
	if id, ok := value.(uint); ok && id == r.SourceID {
		return errSameEndpoints
	}

	return nil
}

func positive(err error) validation.RuleFunc {
	return func(value interface{}) error {
		if n, ok := value.(int); ok && n <= 0 {
			return err
		}

		return nil
	}
}

type RouteFilter struct {
	Source      string
	Destination string
}
