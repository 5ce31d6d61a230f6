// File: stagelink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stagelink/config"
	"stagelink/cron"
	"stagelink/database"
	accountRepoPkg "stagelink/database/repository/account"
	calendarRepoPkg "stagelink/database/repository/calendar"
	gigRepoPkg "stagelink/database/repository/gig"
	"stagelink/handlers"
	"stagelink/middleware"
	"stagelink/routes"
	"stagelink/services/account"
	"stagelink/services/gig"
	"stagelink/services/notification"
	"stagelink/services/schedule"
	"stagelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	gigRepo := gigRepoPkg.NewMongoGigRepo()
	calendarRepo := calendarRepoPkg.NewMongoCalendarRepo()
	accountRepo := accountRepoPkg.NewMongoAccountRepo()

	// services.
	noticeService := notification.NewAsynqNoticeService()

	scheduleService := &schedule.DefaultScheduleService{
		CalendarRepo: calendarRepo,
	}
	gigService := &gig.DefaultGigService{
		Repo:     gigRepo,
		Notifier: noticeService,
	}
	accountService := &account.DefaultAccountService{
		Repo:      accountRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	// handlers.
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	gigHandler := handlers.NewGigHandler(gigService)
	accountHandler := handlers.NewAccountHandler(accountService)

	// routes.
	authCache := utils.GetAuthCacheClient()
	routes.RegisterCORS(router)
	routes.RegisterHealthRoute(router)
	routes.RegisterAccountRoutes(router, accountHandler, authCache)
	routes.RegisterScheduleRoutes(router, scheduleHandler, authCache)
	routes.RegisterGigRoutes(router, gigHandler, authCache)

	// Background notice worker.
	cron.InitNoticeWorker()

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
