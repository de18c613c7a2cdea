package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	custommiddleware "github.com/mmeshcher/motoshop-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса мотомастерской.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/bookings", h.CreateBooking)
		r.Get("/bookings", h.GetBookings)
		r.Get("/bookings/{id}", h.GetBooking)
		r.Put("/bookings/{id}", h.UpdateBooking)
		r.Get("/bookings/{id}/invoice", h.GetInvoice)
		r.Get("/bookings/{id}/invoice/share", h.GetInvoiceShareText)

		r.Post("/shopping", h.AddShoppingItem)
		r.Get("/shopping", h.GetShopping)
		r.Put("/shopping/{id}", h.UpdateShoppingItem)
		r.Delete("/shopping/{id}", h.RemoveShoppingItem)
		r.Post("/shopping/{id}/toggle", h.ToggleShoppingItem)

		r.Get("/reports/monthly", h.GetMonthlyReport)

		r.Post("/assistant/question", h.AskMechanic)
		r.Post("/assistant/article", h.GenerateArticle)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
