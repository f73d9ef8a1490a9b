package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/config"
	appHTTP "github.com/sitelink-app/sitelink-backend-go/internal/handler/http"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/cron"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/database"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/email"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/jwt"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/oauth"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/sse"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/storage"
	"github.com/sitelink-app/sitelink-backend-go/internal/repository/postgresql"
	assignmentService "github.com/sitelink-app/sitelink-backend-go/internal/service/assignment"
	serviceAuth "github.com/sitelink-app/sitelink-backend-go/internal/service/auth"
	contractorService "github.com/sitelink-app/sitelink-backend-go/internal/service/contractor"
	dashboardService "github.com/sitelink-app/sitelink-backend-go/internal/service/dashboard"
	"github.com/sitelink-app/sitelink-backend-go/internal/service/file"
	invitationService "github.com/sitelink-app/sitelink-backend-go/internal/service/invitation"
	jobService "github.com/sitelink-app/sitelink-backend-go/internal/service/job"
	notificationService "github.com/sitelink-app/sitelink-backend-go/internal/service/notification"
	profileService "github.com/sitelink-app/sitelink-backend-go/internal/service/profile"
	siteService "github.com/sitelink-app/sitelink-backend-go/internal/service/site"
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

	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	contractorRepo := postgresql.NewContractorRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	case "s3":
		fileStorage, err = storage.NewS3Storage(storage.S3Config{
			Region:    cfg.Storage.S3Region,
			Bucket:    cfg.Storage.S3Bucket,
			AccessKey: cfg.Storage.AWSAccessKey,
			SecretKey: cfg.Storage.AWSSecretKey,
		})
		if err != nil {
			log.Fatal("Failed to initialize s3 storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage, jobRepo, siteRepo, contractorRepo)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	notifService := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})

	authService := serviceAuth.NewAuthService(db, userRepo, profileRepo, invitationRepo, jwtService, jwtRepo, notifService)
	profileSvc := profileService.NewProfileService(db, profileRepo, contractorRepo)
	approvalSvc := profileService.NewApprovalService(profileRepo, notifService, emailService)
	contractorSvc := contractorService.NewContractorService(contractorRepo)
	siteSvc := siteService.NewSiteService(db, siteRepo)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, contractorRepo, siteRepo, jobRepo, notifService)
	jobSvc := jobService.NewJobService(jobRepo, siteRepo, contractorRepo, notifService)
	invitationSvc := invitationService.NewInvitationService(invitationRepo, profileRepo, userRepo, emailService, cfg.Invitation, cfg.App.FrontendURL)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, contractorRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authService, googleService, cfg.App.FrontendURL),
		Profile:      appHTTP.NewProfileHandler(profileSvc),
		Approval:     appHTTP.NewApprovalHandler(approvalSvc),
		Contractor:   appHTTP.NewContractorHandler(contractorSvc),
		Site:         appHTTP.NewSiteHandler(siteSvc, assignmentSvc),
		Assignment:   appHTTP.NewAssignmentHandler(assignmentSvc),
		Job:          appHTTP.NewJobHandler(jobSvc),
		Invitation:   appHTTP.NewInvitationHandler(invitationSvc),
		Notification: appHTTP.NewNotificationHandler(notifService, jwtService),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		File:         appHTTP.NewFileHandler(fileService),
	}

	router := appHTTP.NewRouter(jwtService, approvalSvc, handlers, cfg.App.FrontendURL, cfg.App.Env)

	scheduler := cron.NewScheduler()
	sweepInterval, err := time.ParseDuration(cfg.Invitation.SweepInterval)
	if err != nil {
		log.Fatal("Invalid INVITATION_SWEEP_INTERVAL: ", err)
	}
	cron.RegisterInvitationSweep(scheduler, invitationSvc, sweepInterval)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}

	scheduler.Stop()
	notifService.Stop()
}
