// Package service реализует бизнес-логику сервиса мотомастерской.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmeshcher/motoshop-system/internal/finance"
	"github.com/mmeshcher/motoshop-system/internal/invoice"
	"github.com/mmeshcher/motoshop-system/internal/model"
	"github.com/mmeshcher/motoshop-system/internal/validation"
)

// ErrValidation возвращается, когда входные данные не прошли проверку.
var (
	ErrValidation = errors.New("validation failed")
	// ErrBookingNotFound возвращается, если заявка с указанным идентификатором не найдена.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrItemNotFound возвращается, если позиция списка покупок не найдена.
	ErrItemNotFound = errors.New("shopping list item not found")
	// ErrAssistantUnavailable возвращается, когда клиент ассистента не настроен.
	ErrAssistantUnavailable = errors.New("assistant is not configured")
)

// BookingRepository описывает контракт хранилища заявок, используемый сервисом.
type BookingRepository interface {
	Add(ctx context.Context, booking model.Booking) model.Booking
	Update(ctx context.Context, booking model.Booking)
	Get(id int) (model.Booking, bool)
	List() []model.Booking
	ListByStatus(status model.ServiceStatus) []model.Booking
}

// ShoppingRepository описывает контракт хранилища списка покупок.
type ShoppingRepository interface {
	Add(ctx context.Context, item model.ShoppingListItem) model.ShoppingListItem
	Update(ctx context.Context, item model.ShoppingListItem)
	Remove(ctx context.Context, id int)
	ToggleBought(ctx context.Context, id int) (model.ShoppingListItem, bool)
	List() []model.ShoppingListItem
}

// Assistant описывает контракт клиента текстовой генерации.
type Assistant interface {
	AskMechanic(ctx context.Context, question string) (string, error)
	GenerateArticle(ctx context.Context, topic string) (string, error)
}

// Service содержит бизнес-логику сервиса мотомастерской.
type Service struct {
	bookings  BookingRepository
	shopping  ShoppingRepository
	assistant Assistant
}

// NewService создаёт сервис с указанными хранилищами и клиентом ассистента.
// Клиент ассистента может быть nil, тогда соответствующие операции недоступны.
func NewService(bookings BookingRepository, shopping ShoppingRepository, assistant Assistant) *Service {
	return &Service{
		bookings:  bookings,
		shopping:  shopping,
		assistant: assistant,
	}
}

// CreateBooking регистрирует новую заявку на обслуживание. Заявка создаётся
// в статусе Pending с датой, равной моменту создания.
func (s *Service) CreateBooking(ctx context.Context, customer model.Customer, moto model.Motorcycle, description string) (model.Booking, error) {
	fields := map[string]string{
		"customer name":       customer.Name,
		"customer contact":    customer.Contact,
		"motorcycle make":     moto.Make,
		"motorcycle model":    moto.Model,
		"registration number": moto.RegNumber,
		"description":         description,
	}
	for name, value := range fields {
		if !validation.IsNonEmpty(value) {
			return model.Booking{}, fmt.Errorf("%w: %s is required", ErrValidation, name)
		}
	}

	booking := model.Booking{
		Customer:    customer,
		Motorcycle:  moto,
		Description: description,
		Status:      model.StatusPending,
		BookingDate: time.Now(),
		Parts:       []model.Part{},
		Messages:    []model.Message{},
	}

	return s.bookings.Add(ctx, booking), nil
}

// UpdateBooking заменяет заявку целиком по идентификатору. Заявка с
// неизвестным идентификатором молча игнорируется: это не ошибка.
func (s *Service) UpdateBooking(ctx context.Context, booking model.Booking) error {
	if !booking.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, booking.Status)
	}
	if !validation.IsNonEmpty(booking.Description) {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if !validation.IsValidPrice(booking.LaborCost) {
		return fmt.Errorf("%w: labor cost must not be negative", ErrValidation)
	}
	for _, p := range booking.Parts {
		if !validation.IsValidPart(p) {
			return fmt.Errorf("%w: invalid part %q", ErrValidation, p.Name)
		}
	}

	s.bookings.Update(ctx, booking)
	return nil
}

// Booking возвращает заявку по идентификатору.
func (s *Service) Booking(id int) (model.Booking, error) {
	booking, ok := s.bookings.Get(id)
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return booking, nil
}

// Bookings возвращает все заявки в порядке добавления.
func (s *Service) Bookings() []model.Booking {
	return s.bookings.List()
}

// BookingsByStatus возвращает заявки с указанным статусом.
func (s *Service) BookingsByStatus(status model.ServiceStatus) ([]model.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.bookings.ListByStatus(status), nil
}

// BookingInvoice формирует счёт по заявке. Дата счёта — момент формирования.
func (s *Service) BookingInvoice(id int) (invoice.Invoice, error) {
	booking, ok := s.bookings.Get(id)
	if !ok {
		return invoice.Invoice{}, ErrBookingNotFound
	}
	return invoice.Render(booking, time.Now()), nil
}

// InvoiceShareText формирует текст счёта для отправки клиенту.
func (s *Service) InvoiceShareText(id int) (string, error) {
	inv, err := s.BookingInvoice(id)
	if err != nil {
		return "", err
	}
	return invoice.ShareText(inv), nil
}

// AddShoppingItem добавляет позицию в список покупок.
func (s *Service) AddShoppingItem(ctx context.Context, name string, price float64) (model.ShoppingListItem, error) {
	if !validation.IsNonEmpty(name) {
		return model.ShoppingListItem{}, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if !validation.IsValidPrice(price) {
		return model.ShoppingListItem{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	return s.shopping.Add(ctx, model.ShoppingListItem{Name: name, Price: price}), nil
}

// UpdateShoppingItem заменяет позицию списка целиком, поддерживая инвариант:
// дата покупки заполнена тогда и только тогда, когда позиция куплена.
func (s *Service) UpdateShoppingItem(ctx context.Context, item model.ShoppingListItem) error {
	if !validation.IsNonEmpty(item.Name) {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if !validation.IsValidPrice(item.Price) {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	if !item.IsBought {
		item.BoughtDate = nil
	} else if item.BoughtDate == nil {
		now := time.Now()
		item.BoughtDate = &now
	}

	s.shopping.Update(ctx, item)
	return nil
}

// RemoveShoppingItem удаляет позицию списка. Отсутствующий идентификатор — не ошибка.
func (s *Service) RemoveShoppingItem(ctx context.Context, id int) {
	s.shopping.Remove(ctx, id)
}

// ToggleShoppingItem переключает признак покупки позиции.
func (s *Service) ToggleShoppingItem(ctx context.Context, id int) (model.ShoppingListItem, error) {
	item, ok := s.shopping.ToggleBought(ctx, id)
	if !ok {
		return model.ShoppingListItem{}, ErrItemNotFound
	}
	return item, nil
}

// ShoppingSummary содержит список покупок с производными итогами.
type ShoppingSummary struct {
	ToBuy           []model.ShoppingListItem `json:"toBuy"`
	Bought          []model.ShoppingListItem `json:"bought"`
	TotalBoughtCost float64                  `json:"totalBoughtCost"`
	TotalListCost   float64                  `json:"totalListCost"`
	MonthlyProfit   float64                  `json:"monthlyProfit"`
}

// Shopping возвращает список покупок, разделённый по признаку покупки,
// вместе с итогами и прибылью за текущий месяц. Итоги пересчитываются
// при каждом обращении.
func (s *Service) Shopping() ShoppingSummary {
	items := s.shopping.List()
	bookings := s.bookings.List()

	summary := ShoppingSummary{
		ToBuy:           []model.ShoppingListItem{},
		Bought:          []model.ShoppingListItem{},
		TotalBoughtCost: finance.TotalBoughtCost(items),
		TotalListCost:   finance.TotalListCost(items),
		MonthlyProfit:   finance.MonthlyProfit(bookings, items, time.Now()),
	}
	for _, it := range items {
		if it.IsBought {
			summary.Bought = append(summary.Bought, it)
		} else {
			summary.ToBuy = append(summary.ToBuy, it)
		}
	}
	return summary
}

// MonthlyReport содержит финансовые показатели текущего календарного месяца.
type MonthlyReport struct {
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

// Monthly возвращает выручку, расходы и прибыль текущего календарного месяца.
func (s *Service) Monthly() MonthlyReport {
	bookings := s.bookings.List()
	items := s.shopping.List()
	now := time.Now()

	revenue := finance.MonthlyRevenue(bookings, now)
	expense := finance.MonthlyExpense(items, now)

	return MonthlyReport{
		Revenue: revenue,
		Expense: expense,
		Profit:  revenue - expense,
	}
}

// AskMechanic отвечает на вопрос клиента через внешний сервис генерации.
// Сбой внешнего сервиса не влияет на данные мастерской.
func (s *Service) AskMechanic(ctx context.Context, question string) (string, error) {
	if !validation.IsNonEmpty(question) {
		return "", fmt.Errorf("%w: question is required", ErrValidation)
	}
	if s.assistant == nil {
		return "", ErrAssistantUnavailable
	}
	return s.assistant.AskMechanic(ctx, question)
}

// GenerateArticle пишет статью об обслуживании на заданную тему.
func (s *Service) GenerateArticle(ctx context.Context, topic string) (string, error) {
	if !validation.IsNonEmpty(topic) {
		return "", fmt.Errorf("%w: topic is required", ErrValidation)
	}
	if s.assistant == nil {
		return "", ErrAssistantUnavailable
	}
	return s.assistant.GenerateArticle(ctx, topic)
}
