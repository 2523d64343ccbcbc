package db

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

// startPostgres runs a throwaway postgres container, skipping when docker is unavailable.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=airport",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=airport",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })
	_ = resource.Expire(180)

	url := fmt.Sprintf("postgres://airport:secret@%s/airport?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var gormDB *gorm.DB
	pool.MaxWait = 120 * time.Second
	err = pool.Retry(func() error {
		var err error
		gormDB, err = OpenPostgresWithURL(url)
		return err
	})
	require.NoError(t, err)

	return gormDB
}

func TestPostgres_Orders(t *testing.T) {
	gormDB := startPostgres(t)
	ctx := context.Background()

	kyiv, err := dao.NewAirportDAO(gormDB).Insert(ctx, dao.Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"})
	require.NoError(t, err)
	lviv, err := dao.NewAirportDAO(gormDB).Insert(ctx, dao.Airport{Name: "Lviv Danylo Halytskyi", ClosestBigCity: "Lviv"})
	require.NoError(t, err)
	_, err = dao.NewAirportDAO(gormDB).Insert(ctx, dao.Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"})
	assert.ErrorIs(t, err, dao.ErrAirportNameExists)

	route, err := dao.NewRouteDAO(gormDB).Insert(ctx, dao.Route{SourceID: kyiv.ID, DestinationID: lviv.ID, Distance: 540})
	require.NoError(t, err)
	_, err = dao.NewRouteDAO(gormDB).Insert(ctx, dao.Route{SourceID: kyiv.ID, DestinationID: 9999, Distance: 540})
	assert.ErrorIs(t, err, dao.ErrReferenceNotFound)

	airplaneType, err := dao.NewAirplaneTypeDAO(gormDB).Insert(ctx, dao.AirplaneType{Name: "Airbus A320"})
	require.NoError(t, err)
	airplane, err := dao.NewAirplaneDAO(gormDB).Insert(ctx, dao.Airplane{Name: "UR-PSA", TypeID: airplaneType.ID, Rows: 10, SeatsInRow: 4})
	require.NoError(t, err)

	departure := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	flight, err := dao.NewFlightDAO(gormDB).Insert(ctx, dao.Flight{
		RouteID:       route.ID,
		AirplaneID:    airplane.ID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(90 * time.Minute),
	})
	require.NoError(t, err)

	user, err := dao.NewUserDAO(gormDB).Insert(ctx, dao.User{Email: "buyer@example.com", Password: "hash"})
	require.NoError(t, err)

	orders := dao.NewOrderDAO(gormDB)

	const buyers = 10
	errs := make([]error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = orders.Insert(ctx, dao.Order{
				UserID:  user.ID,
				Tickets: []dao.Ticket{{FlightID: flight.ID, Row: 3, Seat: 3}},
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, dao.ErrTicketTaken)
	}
	assert.Equal(t, 1, succeeded)

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	flights, total, err := dao.NewFlightDAO(gormDB).FindAll(ctx, dao.FlightFilter{Date: &day, Source: "BORYS"}, dao.Page{})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, 39, flights[0].TicketsAvailable)

	require.NoError(t, dao.NewAirportDAO(gormDB).Delete(ctx, kyiv.ID))
	_, err = dao.NewFlightDAO(gormDB).FindByID(ctx, flight.ID)
	assert.ErrorIs(t, err, dao.ErrFlightNotFound)
}
