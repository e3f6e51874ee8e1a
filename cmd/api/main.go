package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tals012/agriculture-hrms-sub002/internal/config"
	appHTTP "github.com/tals012/agriculture-hrms-sub002/internal/handler/http"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/cron"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/jwt"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/salary"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/sms"
	"github.com/tals012/agriculture-hrms-sub002/internal/repository/postgresql"
	attendanceService "github.com/tals012/agriculture-hrms-sub002/internal/service/attendance"
	serviceAuth "github.com/tals012/agriculture-hrms-sub002/internal/service/auth"
	clientService "github.com/tals012/agriculture-hrms-sub002/internal/service/client"
	documentService "github.com/tals012/agriculture-hrms-sub002/internal/service/document"
	fieldService "github.com/tals012/agriculture-hrms-sub002/internal/service/field"
	groupService "github.com/tals012/agriculture-hrms-sub002/internal/service/group"
	"github.com/tals012/agriculture-hrms-sub002/internal/service/master"
	payrollService "github.com/tals012/agriculture-hrms-sub002/internal/service/payroll"
	pricingService "github.com/tals012/agriculture-hrms-sub002/internal/service/pricing"
	scheduleService "github.com/tals012/agriculture-hrms-sub002/internal/service/schedule"
	workerService "github.com/tals012/agriculture-hrms-sub002/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	fieldRepo := postgresql.NewFieldRepository(db)
	groupRepo := postgresql.NewGroupRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	speciesRepo := postgresql.NewSpeciesRepository(db)
	harvestTypeRepo := postgresql.NewHarvestTypeRepository(db)
	combinationRepo := postgresql.NewCombinationRepository(db)
	workingScheduleRepo := postgresql.NewWorkingScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	submissionRepo := postgresql.NewMonthlySubmissionRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	salaryClient := salary.NewClient(cfg.Salary)
	smsSender := sms.NewGatewayClient(cfg.SMS)

	authSvc := serviceAuth.NewAuthService(userRepo, organizationRepo, JWTService)
	clientSvc := clientService.NewClientService(clientRepo)
	fieldSvc := fieldService.NewFieldService(fieldRepo, clientRepo)
	groupSvc := groupService.NewGroupService(db, groupRepo, clientRepo, workerRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	speciesSvc := master.NewSpeciesService(speciesRepo)
	harvestTypeSvc := master.NewHarvestTypeService(harvestTypeRepo)
	pricingSvc := pricingService.NewPricingService(combinationRepo, clientRepo, speciesRepo, harvestTypeRepo)
	scheduleSvc := scheduleService.NewScheduleService(workingScheduleRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, groupRepo, combinationRepo, scheduleSvc)
	payrollSvc := payrollService.NewPayrollService(submissionRepo, attendanceRepo, workerRepo, salaryClient, cfg.Dispatch.BatchSize, logger)
	documentSvc := documentService.NewDocumentService(documentRepo, workerRepo, smsSender)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:        JWTService,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc, JWTService),
		ClientHandler:     appHTTP.NewClientHandler(clientSvc),
		FieldHandler:      appHTTP.NewFieldHandler(fieldSvc),
		GroupHandler:      appHTTP.NewGroupHandler(groupSvc),
		WorkerHandler:     appHTTP.NewWorkerHandler(workerSvc),
		MasterHandler:     appHTTP.NewMasterHandler(speciesSvc, harvestTypeSvc),
		PricingHandler:    appHTTP.NewPricingHandler(pricingSvc),
		ScheduleHandler:   appHTTP.NewScheduleHandler(scheduleSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		PayrollHandler:    appHTTP.NewPayrollHandler(payrollSvc),
		DocumentHandler:   appHTTP.NewDocumentHandler(documentSvc),
	})

	scheduler := cron.NewScheduler()
	if salaryClient.Enabled() {
		interval, err := time.ParseDuration(cfg.Dispatch.Interval)
		if err != nil {
			log.Fatal("Invalid SALARY_DISPATCH_INTERVAL: ", err)
		}
		scheduler.AddJob("salary-dispatch", interval, payrollSvc.DispatchPending)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
