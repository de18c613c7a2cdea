// Package model содержит доменные сущности сервиса мотомастерской.
package model

import "time"

// ServiceStatus описывает этап обслуживания мотоцикла.
type ServiceStatus string

// Строковые значения совпадают с данными, сохранёнными прежними версиями приложения.
const (
	StatusPending       ServiceStatus = "Pending"
	StatusInProgress    ServiceStatus = "In Progress"
	StatusAwaitingParts ServiceStatus = "Awaiting Parts"
	StatusCompleted     ServiceStatus = "Completed"
	StatusCancelled     ServiceStatus = "Cancelled"
)

// Statuses перечисляет все статусы в порядке отображения рабочего процесса.
var Statuses = []ServiceStatus{
	StatusPending,
	StatusInProgress,
	StatusAwaitingParts,
	StatusCompleted,
	StatusCancelled,
}

// Valid сообщает, является ли значение одним из известных статусов.
func (s ServiceStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Customer описывает клиента мастерской.
type Customer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Motorcycle описывает мотоцикл, принятый в работу.
type Motorcycle struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	RegNumber string `json:"regNumber"`
}

// Part описывает запчасть, установленную в рамках заявки.
type Part struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Message описывает сообщение в переписке по заявке.
// Поле сохраняется для совместимости с прежним форматом данных,
// отдельного API для переписки нет.
type Message struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Booking описывает заявку на обслуживание.
type Booking struct {
	ID          int           `json:"id"`
	Customer    Customer      `json:"customer"`
	Motorcycle  Motorcycle    `json:"motorcycle"`
	Description string        `json:"description"`
	Status      ServiceStatus `json:"status"`
	BookingDate time.Time     `json:"bookingDate"`
	Parts       []Part        `json:"parts"`
	LaborCost   float64       `json:"laborCost"`
	Messages    []Message     `json:"messages"`
}

// ShoppingListItem описывает позицию в списке покупок мастерской.
// BoughtDate заполнена тогда и только тогда, когда IsBought == true.
type ShoppingListItem struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	IsBought   bool       `json:"isBought"`
	BoughtDate *time.Time `json:"boughtDate,omitempty"`
}
