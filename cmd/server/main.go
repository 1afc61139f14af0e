package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/OutdoorTeam/habit-tracker-backend/api"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/config"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/database"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/health"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/maintenance"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/shutdown"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/platform/startup"
	"github.com/OutdoorTeam/habit-tracker-backend/internal/reset"
	"github.com/OutdoorTeam/habit-tracker-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if _, err := config.LoadConfig(); err != nil {
		panic(fmt.Sprintf("配置加载失败: %v", err))
	}

	database.InitDB(config.Cfg.Database.Sqlite)
	database.InitRedis(config.Cfg.Database.Redis)

	// 1. 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 2. 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 3. 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 4. 异步启动后台的持续健康检查器
	go health.StartRedisHealthCheck()

	// 5. 创建两阶段停机的生命周期管理器，并启动重置调度器
	gracefulManager := lifecycle.NewManager()
	forcefulManager := lifecycle.NewManager()

	if config.Cfg.Scheduler.Enabled {
		if err := reset.StartScheduler(gracefulManager); err != nil {
			panic(fmt.Sprintf("重置调度器启动失败: %v", err))
		}
	} else {
		fmt.Println("重置调度器已被配置禁用。")
	}

	maintenanceHandle, err := gracefulManager.NewServiceHandle("alert-purge")
	if err != nil {
		panic(fmt.Sprintf("告警清理调度器启动失败: %v", err))
	}
	go maintenance.StartAlertPurgeScheduler(maintenanceHandle)

	gin.SetMode(config.Cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.Cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    config.Cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic("Failed to start server: " + err.Error())
		}
	}()

	// 6. 阻塞等待停机信号，编排两阶段优雅停机
	coordinator := shutdown.NewCoordinator(gracefulManager, forcefulManager)
	coordinator.ListenForSignalsAndShutdown(server)
}
