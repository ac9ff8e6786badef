package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"congocar/internal/api"
	"congocar/internal/auth"
	"congocar/internal/repository"
	"congocar/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	carRepo := repository.NewCarRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	jobRepo := repository.NewJobRepository(db)

	notificationSvc := service.NewNotificationService(service.NewEmailSenderFromEnv())
	carSvc := service.NewCarService(carRepo)
	reservationSvc := service.NewReservationService(reservationRepo, carRepo, notificationSvc)
	messageSvc := service.NewMessageService(messageRepo)
	authSvc := service.NewAuthService(profileRepo)
	jobSvc := service.NewJobService(jobRepo)

	catalogueHandler := api.NewCatalogueHandler(carSvc)
	reservationHandler := api.NewReservationHandler(reservationSvc)
	messageHandler := api.NewMessageHandler(messageSvc)
	authHandler := api.NewAuthHandler(authSvc)
	adminHandler := api.NewAdminHandler(carSvc, reservationSvc, messageSvc)
	notificationHandler := api.NewNotificationHandler(notificationSvc)

	r := mux.NewRouter()

	// Public endpoints
	public := r.PathPrefix("/api").Subrouter()
	public.HandleFunc("/cars/brands", catalogueHandler.ListBrands).Methods("GET")
	public.HandleFunc("/cars/{id}", catalogueHandler.GetCar).Methods("GET")
	public.HandleFunc("/cars", catalogueHandler.ListCars).Methods("GET")
	public.HandleFunc("/reservations", reservationHandler.CreateReservation).Methods("POST")
	public.HandleFunc("/messages", messageHandler.CreateMessage).Methods("POST")
	public.HandleFunc("/auth/signup", authHandler.SignUp).Methods("POST")
	public.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	public.Handle("/auth/me", auth.Middleware(http.HandlerFunc(authHandler.Me))).Methods("GET")
	public.HandleFunc("/notifications/reservation", notificationHandler.SendReservation)

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware, auth.RequireAdmin(profileRepo))
	admin.HandleFunc("/cars", adminHandler.ListCars).Methods("GET")
	admin.HandleFunc("/cars", adminHandler.CreateCar).Methods("POST")
	admin.HandleFunc("/cars/{id}", adminHandler.UpdateCar).Methods("PUT")
	admin.HandleFunc("/cars/{id}", adminHandler.DeleteCar).Methods("DELETE")
	admin.HandleFunc("/cars/{id}/status", adminHandler.ToggleCarStatus).Methods("PATCH")
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")
	admin.HandleFunc("/reservations/{id}", adminHandler.DeleteReservation).Methods("DELETE")
	admin.HandleFunc("/messages", adminHandler.ListMessages).Methods("GET")

	startRetentionJob(jobSvc)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}

// startRetentionJob schedules the nightly purge when RETENTION_DAYS is set.
func startRetentionJob(jobSvc *service.JobService) {
	raw := os.Getenv("RETENTION_DAYS")
	if raw == "" {
		return
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		log.Printf("Ignoring invalid RETENTION_DAYS %q", raw)
		return
	}
	c := cron.New()
	_, err = c.AddFunc("0 3 * * *", func() {
		if err := jobSvc.PurgeExpired(days); err != nil {
			log.Printf("Retention job failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule retention job: %v", err)
		return
	}
	c.Start()
	log.Printf("Retention job scheduled: purging records older than %d days", days)
}
