package domain

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

type AirplaneType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (t AirplaneType) String() string {
	return t.Name
}

func (t AirplaneType) Validate() error {
	return validation.ValidateStruct(
		&t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 60)),
	)
}

type Airplane struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	TypeID     uint         `json:"type"`
	Rows       int          `json:"rows"`
	SeatsInRow int          `json:"seats_in_row"`
	Type       AirplaneType `json:"-"`
}

func (a Airplane) String() string {
	return a.Name
}

// Capacity is derived on every read and never stored.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

func (a Airplane) Validate() error {
	return validation.ValidateStruct(
		&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 60)),
		validation.Field(&a.TypeID, validation.Required),
		validation.Field(&a.Rows, validation.Required, validation.Min(1)),
		validation.Field(&a.SeatsInRow, validation.Required, validation.Min(1)),
	)
}

// ValidateSeat checks a row/seat pair against the seating grid.
func (a Airplane) ValidateSeat(row, seat int) error {
	errs := validation.Errors{}
	if row < 1 || row > a.Rows {
		errs["row"] = fmt.Errorf("row should be in range: [1, %d]", a.Rows)
	}
	if seat < 1 || seat > a.SeatsInRow {
		errs["seat"] = fmt.Errorf("seat should be in range: [1, %d]", a.SeatsInRow)
	}

	return errs.Filter()
}

type AirplaneFilter struct {
	Name string
	Type string
}
