package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/config"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/db/dbtest"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/metrics"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/pkg/jwthelper"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/service"
)

const testSigningKey = "order-handler-test-key"

// staleSeatCheck reports every seat as free, as seen by a buyer whose
// availability check ran before a competing order committed.
type staleSeatCheck struct {
	*repository.OrderRepository
}

func (staleSeatCheck) SeatTaken(context.Context, domain.SeatKey, uint) (bool, error) {
	return false, nil
}

// seedFlight stores a 10x4 flight and a passenger, returning their ids.
func seedFlight(t *testing.T, gormDB *gorm.DB) (flightID, userID uint) {
	t.Helper()
	ctx := context.Background()

	kyiv, err := dao.NewAirportDAO(gormDB).Insert(ctx, dao.Airport{Name: "Boryspil", ClosestBigCity: "Kyiv"})
	require.NoError(t, err)
	lviv, err := dao.NewAirportDAO(gormDB).Insert(ctx, dao.Airport{Name: "Lviv Danylo Halytskyi", ClosestBigCity: "Lviv"})
	require.NoError(t, err)
	route, err := dao.NewRouteDAO(gormDB).Insert(ctx, dao.Route{SourceID: kyiv.ID, DestinationID: lviv.ID, Distance: 540})
	require.NoError(t, err)
	airplaneType, err := dao.NewAirplaneTypeDAO(gormDB).Insert(ctx, dao.AirplaneType{Name: "Airbus A320"})
	require.NoError(t, err)
	airplane, err := dao.NewAirplaneDAO(gormDB).Insert(ctx, dao.Airplane{Name: "UR-PSA", TypeID: airplaneType.ID, Rows: 10, SeatsInRow: 4})
	require.NoError(t, err)

	departure := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	flight, err := dao.NewFlightDAO(gormDB).Insert(ctx, dao.Flight{
		RouteID:       route.ID,
		AirplaneID:    airplane.ID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(90 * time.Minute),
	})
	require.NoError(t, err)

	user, err := dao.NewUserDAO(gormDB).Insert(ctx, dao.User{Email: "buyer@example.com", Password: "hash"})
	require.NoError(t, err)

	return flight.ID, user.ID
}

func TestHandleCreateOrder_SeatSoldAfterAvailabilityCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gormDB := dbtest.Open(t)
	flightID, userID := seedFlight(t, gormDB)

	orders := repository.NewOrderRepository(dao.NewOrderDAO(gormDB))
	flights := repository.NewFlightRepository(dao.NewFlightDAO(gormDB))
	reg := metrics.NewRegistry()
	h := NewOrderHandler(config.Default().API, service.NewOrderService(staleSeatCheck{orders}, flights), reg)

	r := gin.New()
	r.POST("/orders", middleware.NewAuthenticator(testSigningKey).VerifyJWT(), h.HandleCreateOrder)

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), time.Hour, userID, false, "test")
	require.NoError(t, err)

	order := func() *httptest.ResponseRecorder {
		body := fmt.Sprintf(`{"tickets":[{"flight":%d,"row":1,"seat":1}]}`, flightID)
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		return rec
	}

	require.Equal(t, http.StatusCreated, order().Code)

	rec := order()
	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Conflict", body.Status)
	assert.Equal(t, "ticket already sold: a requested seat was sold to another order", body.Message)
	assert.NotContains(t, body.Message, "->")

	assert.Equal(t, float64(1), testutil.ToFloat64(reg.SeatConflictsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(reg.OrdersCreatedTotal))
}
