package domain

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type Airport struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func (a Airport) String() string {
	return a.Name
}

func (a Airport) Validate() error {
	return validation.ValidateStruct(
		&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 60)),
		validation.Field(&a.ClosestBigCity, validation.Required, validation.Length(1, 60)),
	)
}
