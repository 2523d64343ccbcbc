package domain

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirplane_Capacity(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		seatsInRow int
		want       int
	}{
		{name: "regular grid", rows: 30, seatsInRow: 6, want: 180},
		{name: "single seat", rows: 1, seatsInRow: 1, want: 1},
		{name: "empty grid", rows: 0, seatsInRow: 6, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Airplane{Rows: tt.rows, SeatsInRow: tt.seatsInRow}
			assert.Equal(t, tt.want, a.Capacity())
		})
	}
}

func TestAirplane_ValidateSeat(t *testing.T) {
	a := Airplane{Rows: 10, SeatsInRow: 4}

	tests := []struct {
		name       string
		row, seat  int
		wantFields map[string]string
	}{
		{name: "first seat", row: 1, seat: 1},
		{name: "last seat", row: 10, seat: 4},
		{name: "row too big", row: 11, seat: 1, wantFields: map[string]string{"row": "row should be in range: [1, 10]"}},
		{name: "row zero", row: 0, seat: 2, wantFields: map[string]string{"row": "row should be in range: [1, 10]"}},
		{name: "seat too big", row: 5, seat: 5, wantFields: map[string]string{"seat": "seat should be in range: [1, 4]"}},
		{
			name: "both out of range", row: 20, seat: 9,
			wantFields: map[string]string{
				"row":  "row should be in range: [1, 10]",
				"seat": "seat should be in range: [1, 4]",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.ValidateSeat(tt.row, tt.seat)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, len(tt.wantFields))
			for field, msg := range tt.wantFields {
				assert.EqualError(t, errs[field], msg)
			}
		})
	}
}

func TestRoute_Validate(t *testing.T) {
	tests := []struct {
		name      string
		route     Route
		wantField string
		wantMsg   string
	}{
		{name: "valid", route: Route{SourceID: 1, DestinationID: 2, Distance: 500}},
		{
			name:      "same endpoints",
			route:     Route{SourceID: 1, DestinationID: 1, Distance: 500},
			wantField: "destination",
			wantMsg:   "source and destination cannot be the same",
		},
		{
			name:      "zero distance",
			route:     Route{SourceID: 1, DestinationID: 2, Distance: 0},
			wantField: "distance",
			wantMsg:   "distance should be greater than 0",
		},
		{
			name:      "negative distance",
			route:     Route{SourceID: 1, DestinationID: 2, Distance: -10},
			wantField: "distance",
			wantMsg:   "distance should be greater than 0",
		},
		{
			name:      "missing source",
			route:     Route{DestinationID: 2, Distance: 10},
			wantField: "source",
			wantMsg:   "cannot be blank",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.route.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.EqualError(t, errs[tt.wantField], tt.wantMsg)
		})
	}
}

func TestAirplane_Validate(t *testing.T) {
	assert.NoError(t, Airplane{Name: "Boeing", TypeID: 1, Rows: 20, SeatsInRow: 6}.Validate())

	err := Airplane{Name: "Boeing", TypeID: 1, Rows: -1, SeatsInRow: 6}.Validate()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "rows")
	assert.NotContains(t, errs, "seats_in_row")
}

func TestFlight_Validate(t *testing.T) {
	now := time.Now().UTC()
	assert.NoError(t, Flight{RouteID: 1, AirplaneID: 1, DepartureTime: now, ArrivalTime: now.Add(time.Hour)}.Validate())

	err := Flight{RouteID: 1}.Validate()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "airplane")
	assert.Contains(t, errs, "departure_time")
	assert.Contains(t, errs, "arrival_time")
	assert.NotContains(t, errs, "route")
}

func TestDisplayStrings(t *testing.T) {
	kyiv := Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"}
	lviv := Airport{Name: "Lviv Danylo Halytskyi", ClosestBigCity: "Lviv"}
	route := Route{Source: kyiv, Destination: lviv}
	flight := Flight{Route: route}
	departure := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, "Boryspil to Lviv Danylo Halytskyi", route.String())
	assert.Equal(t, route.String(), flight.String())
	assert.Equal(t, "Boryspil to Lviv Danylo Halytskyi (row: 3, seat: 2)", Ticket{Flight: flight, Row: 3, Seat: 2}.String())
	assert.Equal(t, "Jane Doe", Crew{FirstName: "Jane", LastName: "Doe"}.String())
	assert.Equal(t, "Airbus A320", AirplaneType{Name: "Airbus A320"}.String())
	assert.Equal(t, "2024-05-01T08:30:00Z", Order{CreatedAt: departure}.String())
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Size: 10}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 3, Size: 10}.Offset())
}
