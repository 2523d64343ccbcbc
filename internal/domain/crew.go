package domain

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type Crew struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (c Crew) String() string {
	return c.FirstName + " " + c.LastName
}

func (c Crew) Validate() error {
	return validation.ValidateStruct(
		&c,
		validation.Field(&c.FirstName, validation.Required, validation.Length(1, 60)),
		validation.Field(&c.LastName, validation.Required, validation.Length(1, 60)),
	)
}
