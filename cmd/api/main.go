package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/edudesk/attendance-engine-go/internal/config"
	appHTTP "github.com/edudesk/attendance-engine-go/internal/handler/http"
	"github.com/edudesk/attendance-engine-go/internal/pkg/database"
	"github.com/edudesk/attendance-engine-go/internal/pkg/geocode"
	"github.com/edudesk/attendance-engine-go/internal/pkg/jwt"
	"github.com/edudesk/attendance-engine-go/internal/pkg/lock"
	"github.com/edudesk/attendance-engine-go/internal/repository/postgresql"
	attendanceService "github.com/edudesk/attendance-engine-go/internal/service/attendance"
	leaveService "github.com/edudesk/attendance-engine-go/internal/service/leave"
	reportService "github.com/edudesk/attendance-engine-go/internal/service/report"
	shiftService "github.com/edudesk/attendance-engine-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "attendance-engine"),
	)

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveLedger := postgresql.NewLeaveLedger(db)
	holidayCalendar := postgresql.NewHolidayCalendar(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret)
	dayLocks := lock.NewKeyed()

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		shiftRepo,
		leaveLedger,
		holidayCalendar,
		geocode.NewNoop(),
		dayLocks,
		cfg.Engine,
		logger,
	)
	reportSvc := reportService.NewReportService(
		attendanceRepo,
		employeeRepo,
		leaveLedger,
		holidayCalendar,
		cfg.Engine,
	)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveLedger, employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		attendanceHandler,
		reportHandler,
		shiftHandler,
		leaveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
