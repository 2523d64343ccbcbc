package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/config"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/db"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/logger"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer logger.Sync()

	var postgresDB *gorm.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = seedAdmin(conf.Admin, postgresDB); err != nil {
		return fmt.Errorf("failed to seed admin user -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func seedAdmin(conf *config.AdminConfig, postgresDB *gorm.DB) error {
	if conf == nil || conf.Email == "" || conf.Password == "" {
		return nil
	}

	svc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(postgresDB)))
	if _, err := svc.EnsureAdmin(context.Background(), conf.Email, conf.Password); err != nil {
		return fmt.Errorf("svc.EnsureAdmin -> %w", err)
	}

	return nil
}
