package http

import (
	"log/slog"
	"net/http"

	"festx/internal/delivery/http/controllers"
	"festx/internal/delivery/http/helpers"
	"festx/internal/delivery/http/middleware"
	"festx/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events        *controllers.EventController
	Attendees     *controllers.AttendeeController
	Budget        *controllers.BudgetController
	Notifications *controllers.NotificationController
	Approvals     *controllers.ApprovalController
	Users         *controllers.UserController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Events
	mux.HandleFunc("POST /events", auth(c.Events.CreateEvent))
	mux.HandleFunc("GET /events", auth(c.Events.ListEvents))
	mux.HandleFunc("GET /events/me", auth(c.Events.ListMyEvents))
	mux.HandleFunc("GET /events/{eventID}", auth(c.Events.GetEvent))
	mux.HandleFunc("POST /events/venue-check", auth(c.Events.CheckVenue))
	mux.HandleFunc("POST /events/{eventID}/approve", auth(c.Events.ApproveEvent))
	mux.HandleFunc("POST /events/{eventID}/reject", auth(c.Events.RejectEvent))
	mux.HandleFunc("POST /events/{eventID}/cancel", auth(c.Events.CancelEvent))
	mux.HandleFunc("POST /events/{eventID}/reschedule", auth(c.Events.RescheduleEvent))

	// Registrations and attendance
	mux.HandleFunc("POST /events/{eventID}/registrations", auth(c.Attendees.Register))
	mux.HandleFunc("GET /events/{eventID}/registrations", auth(c.Attendees.ListEventRegistrations))
	mux.HandleFunc("POST /events/{eventID}/scan", auth(c.Attendees.ScanTicket))
	mux.HandleFunc("POST /registrations/{registrationID}/verify-payment", auth(c.Attendees.VerifyPayment))
	mux.HandleFunc("GET /registrations/me", auth(c.Attendees.ListMyRegistrations))

	// Budget
	mux.HandleFunc("GET /events/{eventID}/budget", auth(c.Budget.GetSummary))
	mux.HandleFunc("POST /events/{eventID}/budget/expenses", auth(c.Budget.AddExpense))
	mux.HandleFunc("DELETE /events/{eventID}/budget/expenses/{expenseID}", auth(c.Budget.DeleteExpense))

	// Notifications
	mux.HandleFunc("GET /notifications", auth(c.Notifications.List))
	mux.HandleFunc("POST /notifications/{notificationID}/read", auth(c.Notifications.MarkRead))
	mux.HandleFunc("POST /notifications/broadcast", auth(c.Notifications.Broadcast))
	mux.HandleFunc("POST /notifications/attendees", auth(c.Notifications.MessageAttendees))

	// Organizer onboarding
	mux.HandleFunc("POST /organizer-requests", auth(c.Approvals.Submit))
	mux.HandleFunc("GET /organizer-requests", auth(c.Approvals.ListPending))
	mux.HandleFunc("POST /organizer-requests/{requestID}/approve", auth(c.Approvals.Approve))
	mux.HandleFunc("POST /organizer-requests/{requestID}/reject", auth(c.Approvals.Reject))

	// User management
	mux.HandleFunc("GET /users", auth(c.Users.ListUsers))
	mux.HandleFunc("POST /users/{userID}/status", auth(c.Users.SetStatus))
	mux.HandleFunc("DELETE /users/{userID}", auth(c.Users.DeleteUser))

	mux.HandleFunc("GET /health", health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
