package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"med-booking-api/internal/core/auth"
	"med-booking-api/internal/core/cache"
	"med-booking-api/internal/core/config"
	"med-booking-api/internal/core/database"
	"med-booking-api/internal/core/logger"
	"med-booking-api/internal/core/server"
	"med-booking-api/internal/domain"
	"med-booking-api/internal/feature/doctor"
	"med-booking-api/internal/repo"
	"med-booking-api/internal/scheduler"
	"med-booking-api/internal/service"
	"med-booking-api/internal/transport/http/handler"
	"med-booking-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// 自动迁移
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Appointment{}, &doctor.Doctor{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}
	if cfg.DB.SeedDoctors {
		if err := doctor.Seed(db); err != nil {
			log.Fatal("seed doctors failed", zap.Error(err))
		}
	}

	// redis（可选）
	var rc *cache.Cache
	if cfg.Redis.Enable {
		rc = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 依赖装配
	userRepo := repo.NewUserRepo(db)
	apptRepo := repo.NewAppointmentRepo(db)
	dir := service.NewUserDirectory(userRepo, rc, time.Duration(cfg.Redis.UserTTLSec)*time.Second, cfg.App.AdminEmails)
	booking := service.NewBookingService(dir, apptRepo)
	lc := service.NewLifecycle(apptRepo)

	// 过期扫描定时器（cron 为空则只接受 API 触发）
	if cfg.Sweep.Cron != "" {
		cr, err := scheduler.NewSweeper(lc, log).Start(cfg.Sweep.Cron)
		if err != nil {
			log.Fatal("sweep scheduler failed", zap.Error(err))
		}
		defer cr.Stop()
	}

	// 医生名录模块走注册器
	router.Register(doctor.NewModule(doctor.NewRepo(db), rc))

	// 路由
	authH := handler.NewAuthHandler(dir, jwter)
	bookH := handler.NewBookingHandler(booking, lc)
	r := router.NewAPIEngine(log, jwter, authH, bookH)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("booking api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("booking api start FAILED", zap.Error(err))
		}
	}()
	log.Info("booking api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("booking api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
