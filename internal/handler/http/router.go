package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/jwt"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Auth         AuthHandler
	Profile      ProfileHandler
	Approval     ApprovalHandler
	Contractor   ContractorHandler
	Site         SiteHandler
	Assignment   AssignmentHandler
	Job          JobHandler
	Invitation   InvitationHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
	File         FileHandler
}

func NewRouter(jwtService jwt.Service, approvalService profile.ApprovalService, h Handlers, frontendURL, appEnv string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitelink"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Route("/callback", func(r chi.Router) {
					r.Get("/google", h.Auth.OAuthCallbackGoogle)
				})
			})
		})

		// Public: pre-registration invitation check.
		r.Get("/invitations/validate", h.Invitation.Validate)

		// Public: the SSE stream authenticates with its own short-lived token.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Reachable while approval is pending.
			r.Route("/profiles/me", func(r chi.Router) {
				r.Get("/", h.Profile.GetMe)
				r.Put("/", h.Profile.UpdateMe)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Get("/stream-token", h.Notification.GetStreamToken)
				r.Put("/read", h.Notification.MarkAsRead)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
				r.Delete("/{id}", h.Notification.Delete)
			})

			// Requires an approved account
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireApproved(approvalService))

				r.Route("/contractors", func(r chi.Router) {
					r.Get("/", h.Contractor.List)

					// Contractor only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireContractor)
						r.Get("/me", h.Contractor.GetMine)
						r.Put("/me", h.Contractor.UpdateMine)
						r.Post("/me/service-areas", h.Contractor.AddServiceArea)
						r.Delete("/me/service-areas/{areaID}", h.Contractor.RemoveServiceArea)
						r.Post("/me/licenses", h.Contractor.AddLicense)
						r.Delete("/me/licenses/{licenseID}", h.Contractor.RemoveLicense)
					})

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.Contractor.Get)
						r.Get("/service-areas", h.Contractor.ListServiceAreas)
						r.Get("/licenses", h.Contractor.ListLicenses)
						r.Post("/licenses/document", h.File.UploadLicenseDocument)
					})
				})

				// Business only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireBusiness)

					r.Route("/approvals", func(r chi.Router) {
						r.Get("/", h.Approval.List)
						r.Post("/{id}/approve", h.Approval.Approve)
						r.Post("/{id}/reject", h.Approval.Reject)
					})

					r.Route("/sites", func(r chi.Router) {
						r.Get("/", h.Site.List)
						r.Post("/", h.Site.Create)

						r.Route("/{id}", func(r chi.Router) {
							r.Get("/", h.Site.Get)
							r.Put("/", h.Site.Update)
							r.Delete("/", h.Site.Delete)

							r.Get("/requirements", h.Site.ListRequirements)
							r.Put("/requirements/{requirementID}", h.Site.UpdateRequirement)
							r.Post("/requirements/document", h.File.UploadRequirementDocument)

							r.Get("/contractors", h.Site.ListContractors)
							r.Post("/contractors", h.Assignment.Assign)

							r.Get("/jobs", h.Job.ListBySite)
						})
					})

					r.Route("/assignments/{id}", func(r chi.Router) {
						r.Patch("/", h.Assignment.Update)
						r.Delete("/", h.Assignment.Delete)
					})

					r.Route("/invitations", func(r chi.Router) {
						r.Get("/", h.Invitation.ListMine)
						r.Post("/", h.Invitation.Create)
						r.Delete("/{id}", h.Invitation.Delete)
					})

					r.Post("/jobs", h.Job.Create)
					r.Put("/jobs/{id}", h.Job.Update)
					r.Delete("/jobs/{id}", h.Job.Delete)

					r.Get("/dashboard/business", h.Dashboard.BusinessOverview)
				})

				// Contractor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireContractor)
					r.Get("/jobs/me", h.Job.ListMine)
					r.Get("/dashboard/contractor", h.Dashboard.ContractorOverview)
				})

				// Shared by both portals
				r.Get("/jobs/{id}", h.Job.Get)
				r.Put("/jobs/{id}/status", h.Job.Transition)
				r.Post("/jobs/{id}/attachment", h.File.UploadJobAttachment)
			})
		})
	})
	return r
}
