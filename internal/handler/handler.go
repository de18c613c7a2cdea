// Package handler содержит HTTP-обработчики API сервиса мотомастерской.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/motoshop-system/internal/invoice"
	"github.com/mmeshcher/motoshop-system/internal/model"
	"github.com/mmeshcher/motoshop-system/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	CreateBooking(ctx context.Context, customer model.Customer, moto model.Motorcycle, description string) (model.Booking, error)
	UpdateBooking(ctx context.Context, booking model.Booking) error
	Booking(id int) (model.Booking, error)
	Bookings() []model.Booking
	BookingsByStatus(status model.ServiceStatus) ([]model.Booking, error)
	BookingInvoice(id int) (invoice.Invoice, error)
	InvoiceShareText(id int) (string, error)
	AddShoppingItem(ctx context.Context, name string, price float64) (model.ShoppingListItem, error)
	UpdateShoppingItem(ctx context.Context, item model.ShoppingListItem) error
	RemoveShoppingItem(ctx context.Context, id int)
	ToggleShoppingItem(ctx context.Context, id int) (model.ShoppingListItem, error)
	Shopping() service.ShoppingSummary
	Monthly() service.MonthlyReport
	AskMechanic(ctx context.Context, question string) (string, error)
	GenerateArticle(ctx context.Context, topic string) (string, error)
}

// Handler реализует HTTP-обработчики API сервиса мотомастерской.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func urlID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type createBookingRequest struct {
	Customer    model.Customer   `json:"customer"`
	Motorcycle  model.Motorcycle `json:"motorcycle"`
	Description string           `json:"description"`
}

// CreateBooking регистрирует новую заявку клиента на обслуживание.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), req.Customer, req.Motorcycle, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("create booking error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, booking)
}

// GetBookings возвращает заявки: все или отфильтрованные по статусу.
func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		h.writeJSON(w, http.StatusOK, h.service.Bookings())
		return
	}

	bookings, err := h.service.BookingsByStatus(model.ServiceStatus(status))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	h.writeJSON(w, http.StatusOK, bookings)
}

// GetBooking возвращает одну заявку по идентификатору.
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	booking, err := h.service.Booking(id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("get booking error", zap.Error(err), zap.Int("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, booking)
}

// UpdateBooking заменяет заявку целиком по идентификатору из адреса.
// Неизвестный идентификатор оставляет коллекцию без изменений.
func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if booking.ID != 0 && booking.ID != id {
		http.Error(w, "booking id mismatch", http.StatusBadRequest)
		return
	}
	booking.ID = id

	if err := h.service.UpdateBooking(r.Context(), booking); err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("update booking error", zap.Error(err), zap.Int("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GetInvoice возвращает счёт по заявке.
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	inv, err := h.service.BookingInvoice(id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("get invoice error", zap.Error(err), zap.Int("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, inv)
}

type shareResponse struct {
	Text string `json:"text"`
}

// GetInvoiceShareText возвращает текст счёта для отправки клиенту.
func (h *Handler) GetInvoiceShareText(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	text, err := h.service.InvoiceShareText(id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("share invoice error", zap.Error(err), zap.Int("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, shareResponse{Text: text})
}

type addItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AddShoppingItem добавляет позицию в список покупок.
func (h *Handler) AddShoppingItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.service.AddShoppingItem(r.Context(), req.Name, req.Price)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("add shopping item error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, item)
}

// UpdateShoppingItem заменяет позицию списка целиком.
func (h *Handler) UpdateShoppingItem(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var item model.ShoppingListItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if item.ID != 0 && item.ID != id {
		http.Error(w, "item id mismatch", http.StatusBadRequest)
		return
	}
	item.ID = id

	if err := h.service.UpdateShoppingItem(r.Context(), item); err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("update shopping item error", zap.Error(err), zap.Int("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// RemoveShoppingItem удаляет позицию списка. Операция идемпотентна.
func (h *Handler) RemoveShoppingItem(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.service.RemoveShoppingItem(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// ToggleShoppingItem переключает признак покупки позиции.
func (h *Handler) ToggleShoppingItem(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	item, err := h.service.ToggleShoppingItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("toggle shopping item error", zap.Error(err), zap.Int("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, item)
}

// GetShopping возвращает список покупок с итогами и прибылью месяца.
func (h *Handler) GetShopping(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Shopping())
}

// GetMonthlyReport возвращает финансовые показатели текущего месяца.
func (h *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Monthly())
}

type questionRequest struct {
	Question string `json:"question"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

type topicRequest struct {
	Topic string `json:"topic"`
}

type articleResponse struct {
	Article string `json:"article"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// AskMechanic отвечает на вопрос клиента через ассистента. Сбой внешнего
// сервиса возвращается текстом ошибки, данные мастерской не затрагиваются.
func (h *Handler) AskMechanic(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	answer, err := h.service.AskMechanic(r.Context(), req.Question)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Warn("assistant question error", zap.Error(err))
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

// GenerateArticle генерирует статью об обслуживании через ассистента.
func (h *Handler) GenerateArticle(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	article, err := h.service.GenerateArticle(r.Context(), req.Topic)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Warn("assistant article error", zap.Error(err))
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, articleResponse{Article: article})
}
