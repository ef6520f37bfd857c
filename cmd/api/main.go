package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/config"
	"fieldops/internal/database"
	"fieldops/internal/middleware"
	"fieldops/internal/modules/auth"
	"fieldops/internal/modules/booking"
	"fieldops/internal/modules/directory"
	"fieldops/internal/modules/notification"
	"fieldops/internal/modules/subscribers"
	"fieldops/internal/modules/tasks"
	"fieldops/internal/modules/upload"
	jwtsvc "fieldops/internal/pkg/jwt"
	"fieldops/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	j := jwtsvc.New(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	hub := notification.NewHub()
	defer hub.Close()
	gateway := notification.NewWhatsAppGateway(cfg.WhatsApp.APIBaseURL, cfg.WhatsApp.Token, cfg.WhatsApp.PhoneNumberID)
	notifService := notification.NewService(notification.NewRepository(db), hub, gateway, cfg.WhatsApp.DefaultRecipient)
	notifHandler := notification.NewHandler(notifService, hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(reservationRepo, notifService)
	bookingHandler := booking.NewHandler(bookingService)

	taskService := tasks.NewService(taskRepo, userRepo, resourceRepo, notifService)
	taskHandler := tasks.NewHandler(taskService)

	directoryService := directory.NewService(resourceRepo, reservationRepo, userRepo)
	directoryHandler := directory.NewHandler(directoryService)

	uploadService := upload.NewService(uploadRepo, cfg.Upload.Dir, cfg.Upload.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	routerOS := subscribers.NewMikroTikClient(cfg.MikroTik.Address, cfg.MikroTik.User, cfg.MikroTik.Password)
	subscriberHandler := subscribers.NewHandler(subscribers.NewService(routerOS))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(cfg.Upload.StaticBase, cfg.Upload.Dir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			taskHandler.RegisterRoutes(protected)
			directoryHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
			authHandler.RegisterAdminRoutes(protected)
			subscriberHandler.RegisterRoutes(protected)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("listening addr=%s env=%s", srv.Addr, cfg.Environment)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
