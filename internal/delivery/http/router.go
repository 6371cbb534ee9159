package http

import (
	"net/http"

	"clinic-frontdesk/internal/delivery/http/handler"
	"clinic-frontdesk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	queueHandler       *handler.QueueHandler
	streamHandler      *handler.StreamHandler
	blockedDateHandler *handler.BlockedDateHandler
	settingsHandler    *handler.SettingsHandler
	paymentHandler     *handler.PaymentHandler
	statsHandler       *handler.StatsHandler
	userHandler        *handler.UserHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	queueHandler *handler.QueueHandler,
	streamHandler *handler.StreamHandler,
	blockedDateHandler *handler.BlockedDateHandler,
	settingsHandler *handler.SettingsHandler,
	paymentHandler *handler.PaymentHandler,
	statsHandler *handler.StatsHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		queueHandler:       queueHandler,
		streamHandler:      streamHandler,
		blockedDateHandler: blockedDateHandler,
		settingsHandler:    settingsHandler,
		paymentHandler:     paymentHandler,
		statsHandler:       statsHandler,
		userHandler:        userHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/availability", r.appointmentHandler.Availability).Methods(http.MethodGet)
	api.HandleFunc("/stream", r.streamHandler.Stream).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/setup", r.authHandler.Setup).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Staff routes (admin or secretary)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/appointments", r.appointmentHandler.CreateStaff).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/order", r.queueHandler.Reorder).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}/date", r.appointmentHandler.Move).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}/call", r.queueHandler.Call).Methods(http.MethodPost)

	staff.HandleFunc("/blocked-dates", r.blockedDateHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/blocked-dates", r.blockedDateHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/blocked-dates/{id}", r.blockedDateHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/payments", r.paymentHandler.Record).Methods(http.MethodPost)
	staff.HandleFunc("/payments", r.paymentHandler.DayCash).Methods(http.MethodGet)
	staff.HandleFunc("/payments/report", r.paymentHandler.Report).Methods(http.MethodGet)

	staff.HandleFunc("/followups", r.appointmentHandler.RecordFollowup).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/settings", r.settingsHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/settings", r.settingsHandler.Update).Methods(http.MethodPut)

	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/payments/{id}", r.paymentHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/stats", r.statsHandler.Appointments).Methods(http.MethodGet)

	admin.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
