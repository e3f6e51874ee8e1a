package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/tals012/agriculture-hrms-sub002/internal/handler/http/middleware"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService        jwt.Service
	AuthHandler       AuthHandler
	ClientHandler     ClientHandler
	FieldHandler      FieldHandler
	GroupHandler      GroupHandler
	WorkerHandler     WorkerHandler
	MasterHandler     MasterHandler
	PricingHandler    PricingHandler
	ScheduleHandler   ScheduleHandler
	AttendanceHandler AttendanceHandler
	PayrollHandler    PayrollHandler
	DocumentHandler   DocumentHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "agriculture-hrms"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/logout", deps.AuthHandler.Logout)
		})

		// Workers sign documents from an SMS link, without an account.
		r.Post("/documents/sign", deps.DocumentHandler.Sign)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/clients", func(r chi.Router) {
				r.Post("/", deps.ClientHandler.CreateClient)
				r.Get("/", deps.ClientHandler.ListClients)
				r.Get("/{id}", deps.ClientHandler.GetClient)
				r.Put("/{id}", deps.ClientHandler.UpdateClient)
				r.Delete("/{id}", deps.ClientHandler.DeleteClient)
			})

			r.Route("/fields", func(r chi.Router) {
				r.Post("/", deps.FieldHandler.CreateField)
				r.Get("/", deps.FieldHandler.ListFields)
				r.Get("/{id}", deps.FieldHandler.GetField)
				r.Put("/{id}", deps.FieldHandler.UpdateField)
				r.Delete("/{id}", deps.FieldHandler.DeleteField)
			})

			r.Route("/groups", func(r chi.Router) {
				r.Post("/", deps.GroupHandler.CreateGroup)
				r.Get("/", deps.GroupHandler.ListGroups)
				r.Get("/{id}", deps.GroupHandler.GetGroup)
				r.Put("/{id}", deps.GroupHandler.UpdateGroup)
				r.Delete("/{id}", deps.GroupHandler.DeleteGroup)
				r.Post("/{id}/members", deps.GroupHandler.AddMembers)
				r.Delete("/{id}/members/{workerId}", deps.GroupHandler.RemoveMember)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Post("/", deps.WorkerHandler.CreateWorker)
				r.Get("/", deps.WorkerHandler.ListWorkers)
				r.Get("/{id}", deps.WorkerHandler.GetWorker)
				r.Put("/{id}", deps.WorkerHandler.UpdateWorker)
				r.Delete("/{id}", deps.WorkerHandler.DeleteWorker)
			})

			r.Route("/species", func(r chi.Router) {
				r.Post("/", deps.MasterHandler.CreateSpecies)
				r.Get("/", deps.MasterHandler.ListSpecies)
				r.Put("/{id}", deps.MasterHandler.UpdateSpecies)
				r.Delete("/{id}", deps.MasterHandler.DeleteSpecies)
			})

			r.Route("/harvest-types", func(r chi.Router) {
				r.Post("/", deps.MasterHandler.CreateHarvestType)
				r.Get("/", deps.MasterHandler.ListHarvestTypes)
				r.Put("/{id}", deps.MasterHandler.UpdateHarvestType)
				r.Delete("/{id}", deps.MasterHandler.DeleteHarvestType)
			})

			r.Route("/pricing", func(r chi.Router) {
				r.Post("/", deps.PricingHandler.CreateCombination)
				r.Get("/", deps.PricingHandler.ListCombinations)
				r.Get("/{id}", deps.PricingHandler.GetCombination)
				r.Put("/{id}", deps.PricingHandler.UpdateCombination)
				r.Delete("/{id}", deps.PricingHandler.DeleteCombination)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/generate", deps.ScheduleHandler.GenerateSchedule)
				r.Get("/resolve", deps.ScheduleHandler.ResolveSchedule)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/group-submission", deps.AttendanceHandler.SubmitGroupAttendance)
				r.Get("/", deps.AttendanceHandler.ListAttendance)
				r.Get("/{id}", deps.AttendanceHandler.GetAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", deps.AttendanceHandler.ApproveAttendance)
					r.Post("/{id}/reject", deps.AttendanceHandler.RejectAttendance)
					r.Put("/{id}", deps.AttendanceHandler.CorrectAttendance)
					r.Delete("/{id}", deps.AttendanceHandler.DeleteAttendance)
				})
			})

			// Admin only
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/aggregate", deps.PayrollHandler.AggregateMonth)
				r.Post("/dispatch", deps.PayrollHandler.DispatchPending)
			})

			// Admin only
			r.Route("/salary", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/send-to-salary-system", deps.PayrollHandler.SendToSalary)
				r.Post("/register-worker", deps.PayrollHandler.RegisterWorker)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", deps.DocumentHandler.CreateSigningRequest)
				r.Post("/bulk-send", deps.DocumentHandler.BulkSend)
				r.Post("/archive", deps.DocumentHandler.BulkArchive)
				r.Get("/{id}/pdf", deps.DocumentHandler.DownloadSignedPDF)
			})
		})
	})

	return r
}
