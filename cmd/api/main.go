package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/config"
	appHTTP "github.com/MHamza118/EMSFSPro-sub000/internal/handler/http"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/clock"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/cron"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/jwt"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/oauth"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/sse"
	"github.com/MHamza118/EMSFSPro-sub000/internal/repository/postgresql"
	attendanceService "github.com/MHamza118/EMSFSPro-sub000/internal/service/attendance"
	serviceAuth "github.com/MHamza118/EMSFSPro-sub000/internal/service/auth"
	compensationService "github.com/MHamza118/EMSFSPro-sub000/internal/service/compensation"
	dashboardService "github.com/MHamza118/EMSFSPro-sub000/internal/service/dashboard"
	employeeService "github.com/MHamza118/EMSFSPro-sub000/internal/service/employee"
	holidayService "github.com/MHamza118/EMSFSPro-sub000/internal/service/holiday"
	notificationService "github.com/MHamza118/EMSFSPro-sub000/internal/service/notification"
	progressService "github.com/MHamza118/EMSFSPro-sub000/internal/service/progress"
	scheduleService "github.com/MHamza118/EMSFSPro-sub000/internal/service/schedule"
	taskService "github.com/MHamza118/EMSFSPro-sub000/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	progressRepo := postgresql.NewProgressRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()
	systemClock := clock.SystemClock{}

	notificationSvc := notificationService.NewNotificationService(notificationRepo, userRepo, hub)
	authSvc := serviceAuth.NewAuthService(db, userRepo, employeeRepo, JWTService, JWTRepository)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo, employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, systemClock)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, scheduleRepo, systemClock, notificationSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, notificationSvc)
	compensationSvc := compensationService.NewCompensationService(compensationRepo, notificationSvc)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo, notificationSvc, systemClock)
	progressSvc := progressService.NewProgressService(progressRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, holidayRepo, compensationRepo, taskRepo, systemClock)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Compensation: appHTTP.NewCompensationHandler(compensationSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Progress:     appHTTP.NewProgressHandler(progressSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, JWTService, hub),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(JWTService, appHTTP.RouterConfig{
		AppEnv:           cfg.App.Env,
		FrontendURL:      cfg.App.FrontendURL,
		GoogleLoginReady: cfg.GoogleLoginEnabled(),
	}, handlers)

	var scheduler *cron.Scheduler
	if cfg.Cron.Enabled {
		rolloverInterval, err := time.ParseDuration(cfg.Cron.RolloverInterval)
		if err != nil {
			log.Fatal("Invalid CRON_ROLLOVER_INTERVAL: ", err)
		}
		taskSweepInterval, err := time.ParseDuration(cfg.Cron.TaskSweepInterval)
		if err != nil {
			log.Fatal("Invalid CRON_TASK_SWEEP_INTERVAL: ", err)
		}

		scheduler = cron.NewScheduler()
		cron.NewJobs(scheduleSvc, taskSvc).RegisterJobs(scheduler, rolloverInterval, taskSweepInterval)
		scheduler.Start()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
