package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.ListCategories).Methods("GET")
	r.HandleFunc("/api/category", deps.CategoryHandler.CreateCategory).Methods("POST")
	r.HandleFunc("/api/category/{categoryId}", deps.CategoryHandler.UpdateCategory).Methods("PUT")
	r.HandleFunc("/api/category/{categoryId}", deps.CategoryHandler.DeleteCategory).Methods("DELETE")

	// Date events
	r.HandleFunc("/api/event/date", deps.EventHandler.CreateDateEvent).Methods("POST")
	r.HandleFunc("/api/event/date/{eventId}", deps.EventHandler.UpdateDateEvent).Methods("PUT")
	r.HandleFunc("/api/event/date/{eventId}", deps.EventHandler.DeleteDateEvent).Methods("DELETE")

	// Timed events
	r.HandleFunc("/api/event/timed", deps.EventHandler.CreateTimedEvent).Methods("POST")
	r.HandleFunc("/api/event/timed/{eventId}", deps.EventHandler.UpdateTimedEvent).Methods("PUT")
	r.HandleFunc("/api/event/timed/{eventId}", deps.EventHandler.DeleteTimedEvent).Methods("DELETE")

	// Calendar views
	r.HandleFunc("/api/calendar", deps.GridHandler.GetCalendar).Methods("GET")
	r.HandleFunc("/api/calendar/time-options", deps.DayViewHandler.GetTimeOptions).Methods("GET")
	r.HandleFunc("/api/calendar/day/{date}", deps.DayViewHandler.GetDay).Methods("GET")
	r.HandleFunc("/api/calendar/day/{date}/events", deps.DayViewHandler.GetDayEvents).Methods("GET")

	// Upcoming feed
	r.HandleFunc("/api/upcoming", deps.UpcomingHandler.GetUpcoming).Methods("GET")

	// Employment status
	r.HandleFunc("/api/status", deps.StatusHandler.GetStatus).Methods("GET")
	r.HandleFunc("/api/status", deps.StatusHandler.UpdateStatus).Methods("PUT")
}
