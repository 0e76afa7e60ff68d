package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub-id/attendance-backend-go/internal/config"
	appHTTP "github.com/staffhub-id/attendance-backend-go/internal/handler/http"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/cron"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/database"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/sse"
	"github.com/staffhub-id/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-id/attendance-backend-go/internal/service/attendance"
	notificationService "github.com/staffhub-id/attendance-backend-go/internal/service/notification"
	"github.com/staffhub-id/attendance-backend-go/internal/service/report"
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

	recordRepo := postgresql.NewRecordRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(JWTService).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	hub := sse.NewHub()
	dispatcher := notificationService.NewDispatcher(notificationRepo, hub, notificationService.Config{})
	defer dispatcher.Stop()

	policy := attendanceService.Policy{
		GraceMinutes:      cfg.Attendance.GraceMinutes,
		DefaultShiftStart: cfg.Attendance.DefaultShiftStart,
		LocationTimeout:   cfg.Attendance.LocationTimeout,
	}
	attendanceSvc := attendanceService.NewAttendanceService(
		recordRepo,
		employeeRepo,
		branchRepo,
		dispatcher,
		policy,
	)
	exporter := report.NewMusterRollExporter(attendanceSvc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(attendanceSvc, exporter)
	notificationHandler := appHTTP.NewNotificationHandler(hub, JWTService)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		reportHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
