package bootstrap

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mailsmith/internal/config"
	"mailsmith/internal/model"
	mysqlClient "mailsmith/internal/platform/mysql"
)

type App struct {
	Config *config.Config
	MySQL  *gorm.DB

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.Draft{}, &model.Lead{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	return &App{
		Config:    cfg,
		MySQL:     mysqlDB,
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.MySQL == nil {
		return nil
	}
	sqlDB, err := a.MySQL.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
