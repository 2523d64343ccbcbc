package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/airport-api/docs"
	v1 "github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/config"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/metrics"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/service"
)

const basePath = "/api/v1"

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	Metrics *metrics.Registry
}

type handlers struct {
	auth         *v1.AuthHandler
	user         *v1.UserHandler
	crew         *v1.CrewHandler
	airport      *v1.AirportHandler
	airplaneType *v1.AirplaneTypeHandler
	airplane     *v1.AirplaneHandler
	route        *v1.RouteHandler
	flight       *v1.FlightHandler
	order        *v1.OrderHandler
}

type repositories struct {
	users         *repository.UserRepository
	crew          *repository.CrewRepository
	airports      *repository.AirportRepository
	airplaneTypes *repository.AirplaneTypeRepository
	airplanes     *repository.AirplaneRepository
	routes        *repository.RouteRepository
	flights       *repository.FlightRepository
	orders        *repository.OrderRepository
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		Metrics: metrics.NewRegistry(),
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(newRepositories(db)))

	return s
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		users:         repository.NewUserRepository(dao.NewUserDAO(db)),
		crew:          repository.NewCrewRepository(dao.NewCrewDAO(db)),
		airports:      repository.NewAirportRepository(dao.NewAirportDAO(db)),
		airplaneTypes: repository.NewAirplaneTypeRepository(dao.NewAirplaneTypeDAO(db)),
		airplanes:     repository.NewAirplaneRepository(dao.NewAirplaneDAO(db)),
		routes:        repository.NewRouteRepository(dao.NewRouteDAO(db)),
		flights:       repository.NewFlightRepository(dao.NewFlightDAO(db)),
		orders:        repository.NewOrderRepository(dao.NewOrderDAO(db)),
	}
}

func (s *Server) initHandlers(repos *repositories) *handlers {
	conf := s.Config.API

	return &handlers{
		auth:         v1.NewAuthHandler(conf, service.NewAuthService(repos.users), s.Metrics.LoginsRejectedTotal),
		user:         v1.NewUserHandler(service.NewUserService(repos.users)),
		crew:         v1.NewCrewHandler(conf, service.NewCrewService(repos.crew)),
		airport:      v1.NewAirportHandler(conf, service.NewAirportService(repos.airports)),
		airplaneType: v1.NewAirplaneTypeHandler(conf, service.NewAirplaneTypeService(repos.airplaneTypes)),
		airplane: v1.NewAirplaneHandler(conf,
			service.NewAirplaneService(repos.airplanes, repos.airplaneTypes)),
		route: v1.NewRouteHandler(conf,
			service.NewRouteService(repos.routes, repos.airports)),
		flight: v1.NewFlightHandler(conf,
			service.NewFlightService(repos.flights, repos.routes, repos.airplanes, repos.crew)),
		order: v1.NewOrderHandler(conf,
			service.NewOrderService(repos.orders, repos.flights), s.Metrics),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Metrics(s.Metrics))
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h *handlers) {
	conf := s.Config.API
	authenticator := middleware.NewAuthenticator(conf.JWTSigningKey)
	limiter := middleware.NewRateLimiter(
		conf.LoginRatePerSecond,
		conf.LoginBurst,
		s.Metrics.LoginsRejectedTotal.WithLabelValues("rate_limited"),
	)

	auth := s.Router.Group(basePath, limiter.Limit())
	{
		auth.POST("/auth/signup", h.auth.HandleSignup)
		auth.POST("/auth/login", h.auth.HandleLogin)
	}

	users := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		users.GET("/users/me", h.user.HandleGetMe)
	}

	// Reference data is readable by any signed-in user unless configured
	// otherwise, and only administrators may change it.
	referenceRead := []gin.HandlerFunc{authenticator.VerifyJWT()}
	if conf.ReferenceReadPolicy == config.ReadPolicyAdmin {
		referenceRead = append(referenceRead, middleware.RequireAdmin())
	}
	read := s.Router.Group(basePath, referenceRead...)
	{
		read.GET("/crew", h.crew.HandleListCrew)
		read.GET("/crew/:crewID", h.crew.HandleGetCrew)
		read.GET("/airports", h.airport.HandleListAirports)
		read.GET("/airports/:airportID", h.airport.HandleGetAirport)
		read.GET("/airplane-types", h.airplaneType.HandleListAirplaneTypes)
		read.GET("/airplane-types/:airplaneTypeID", h.airplaneType.HandleGetAirplaneType)
		read.GET("/airplanes", h.airplane.HandleListAirplanes)
		read.GET("/airplanes/:airplaneID", h.airplane.HandleGetAirplane)
		read.GET("/routes", h.route.HandleListRoutes)
		read.GET("/routes/:routeID", h.route.HandleGetRoute)
	}

	flightRead := authenticator.VerifyJWT()
	if conf.FlightsPublicRead {
		flightRead = authenticator.OptionalJWT()
	}
	flights := s.Router.Group(basePath, flightRead)
	{
		flights.GET("/flights", h.flight.HandleListFlights)
		flights.GET("/flights/:flightID", h.flight.HandleGetFlight)
	}

	admin := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequireAdmin())
	{
		admin.POST("/crew", h.crew.HandleCreateCrew)
		admin.PUT("/crew/:crewID", h.crew.HandleUpdateCrew)
		admin.PATCH("/crew/:crewID", h.crew.HandlePartialUpdateCrew)
		admin.DELETE("/crew/:crewID", h.crew.HandleDeleteCrew)

		admin.POST("/airports", h.airport.HandleCreateAirport)
		admin.PUT("/airports/:airportID", h.airport.HandleUpdateAirport)
		admin.PATCH("/airports/:airportID", h.airport.HandlePartialUpdateAirport)
		admin.DELETE("/airports/:airportID", h.airport.HandleDeleteAirport)

		admin.POST("/airplane-types", h.airplaneType.HandleCreateAirplaneType)
		admin.PUT("/airplane-types/:airplaneTypeID", h.airplaneType.HandleUpdateAirplaneType)
		admin.PATCH("/airplane-types/:airplaneTypeID", h.airplaneType.HandlePartialUpdateAirplaneType)
		admin.DELETE("/airplane-types/:airplaneTypeID", h.airplaneType.HandleDeleteAirplaneType)

		admin.POST("/airplanes", h.airplane.HandleCreateAirplane)
		admin.PUT("/airplanes/:airplaneID", h.airplane.HandleUpdateAirplane)
		admin.PATCH("/airplanes/:airplaneID", h.airplane.HandlePartialUpdateAirplane)
		admin.DELETE("/airplanes/:airplaneID", h.airplane.HandleDeleteAirplane)

		admin.POST("/routes", h.route.HandleCreateRoute)
		admin.PUT("/routes/:routeID", h.route.HandleUpdateRoute)
		admin.PATCH("/routes/:routeID", h.route.HandlePartialUpdateRoute)
		admin.DELETE("/routes/:routeID", h.route.HandleDeleteRoute)

		admin.POST("/flights", h.flight.HandleCreateFlight)
		admin.PUT("/flights/:flightID", h.flight.HandleUpdateFlight)
		admin.PATCH("/flights/:flightID", h.flight.HandlePartialUpdateFlight)
		admin.DELETE("/flights/:flightID", h.flight.HandleDeleteFlight)

		admin.PUT("/orders/:orderID", h.order.HandleUpdateOrder)
		admin.PATCH("/orders/:orderID", h.order.HandlePartialUpdateOrder)
		admin.DELETE("/orders/:orderID", h.order.HandleDeleteOrder)
	}

	orders := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		orders.GET("/orders", h.order.HandleListOrders)
		orders.GET("/orders/:orderID", h.order.HandleGetOrder)
		orders.POST("/orders", h.order.HandleCreateOrder)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = conf.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Airport API"
	docs.SwaggerInfo.Description = "Flight booking API built with Gin and GORM."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
