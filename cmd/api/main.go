package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/blazecore/payroll-backend-go/internal/config"
	"github.com/blazecore/payroll-backend-go/internal/domain/attendance"
	appHTTP "github.com/blazecore/payroll-backend-go/internal/handler/http"
	"github.com/blazecore/payroll-backend-go/internal/pkg/cache"
	"github.com/blazecore/payroll-backend-go/internal/pkg/database"
	"github.com/blazecore/payroll-backend-go/internal/pkg/jwt"
	"github.com/blazecore/payroll-backend-go/internal/repository/postgresql"
	advanceService "github.com/blazecore/payroll-backend-go/internal/service/advance"
	attendanceService "github.com/blazecore/payroll-backend-go/internal/service/attendance"
	authService "github.com/blazecore/payroll-backend-go/internal/service/auth"
	dashboardService "github.com/blazecore/payroll-backend-go/internal/service/dashboard"
	holidayService "github.com/blazecore/payroll-backend-go/internal/service/holiday"
	reportService "github.com/blazecore/payroll-backend-go/internal/service/report"
	workerService "github.com/blazecore/payroll-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MinConns, cfg.Database.MaxConns)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := postgresql.Migrate(context.Background(), db); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	monthCache := cache.New[[]attendance.Record](cfg.Cache.Size, cfg.Cache.TTL)

	authSvc, err := authService.NewAuthService(cfg.Admin, jwtService)
	if err != nil {
		log.Fatal("Error initializing auth service: ", err)
	}
	workerSvc := workerService.NewWorkerService(db, workerRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo, holidayRepo, monthCache)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, workerRepo, cfg.Advance)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(workerRepo, attendanceRepo, advanceRepo, holidayRepo)
	dashboardSvc := dashboardService.NewDashboardService(workerRepo, attendanceRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc, attendanceSvc, advanceSvc, reportSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Advance:    appHTTP.NewAdvanceHandler(advanceSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Panchang:   appHTTP.NewPanchangHandler(),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error: ", err)
	}
}
