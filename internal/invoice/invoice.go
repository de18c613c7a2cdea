// Package invoice строит счёт по заявке на обслуживание.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmeshcher/motoshop-system/internal/finance"
	"github.com/mmeshcher/motoshop-system/internal/model"
)

// Реквизиты мастерской, печатаемые в шапке счёта.
const (
	ShopName    = "Corner Tuned Motorcycles"
	ShopAddress = "123 Biker Lane, Apex, NC 27502"
	ShopContact = "contact@cornertuned.com"
)

// laborDescription — наименование строки работ в счёте.
const laborDescription = "Labor"

// LineItem описывает одну строку счёта.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

// Invoice описывает счёт по заявке. Дата счёта — момент формирования,
// а не дата заявки.
type Invoice struct {
	Number    string           `json:"number"`
	IssuedAt  time.Time        `json:"issuedAt"`
	BillTo    model.Customer   `json:"billTo"`
	Vehicle   model.Motorcycle `json:"vehicle"`
	LineItems []LineItem       `json:"lineItems"`
	Subtotal  float64          `json:"subtotal"`
	Total     float64          `json:"total"`
}

// Render формирует счёт по заявке на момент issuedAt: строки по каждой
// запчасти и строка работ, итог равен полной стоимости заявки.
func Render(booking model.Booking, issuedAt time.Time) Invoice {
	items := make([]LineItem, 0, len(booking.Parts)+1)
	for _, p := range booking.Parts {
		items = append(items, LineItem{
			Description: p.Name,
			Quantity:    p.Quantity,
			UnitPrice:   p.Price,
			LineTotal:   p.Price * float64(p.Quantity),
		})
	}
	items = append(items, LineItem{
		Description: laborDescription,
		Quantity:    1,
		UnitPrice:   booking.LaborCost,
		LineTotal:   booking.LaborCost,
	})

	total := finance.TotalCost(booking)

	return Invoice{
		Number:    Number(booking.ID),
		IssuedAt:  issuedAt,
		BillTo:    booking.Customer,
		Vehicle:   booking.Motorcycle,
		LineItems: items,
		Subtotal:  total,
		Total:     total,
	}
}

// Number возвращает номер счёта: идентификатор заявки, дополненный нулями до пяти знаков.
func Number(bookingID int) string {
	return fmt.Sprintf("%05d", bookingID)
}

// ShareText формирует текст счёта для отправки клиенту в мессенджере.
func ShareText(inv Invoice) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Hello %s,\n\n", inv.BillTo.Name)
	fmt.Fprintf(&sb, "Here is the invoice for your *%s %s* from *%s*.\n\n", inv.Vehicle.Make, inv.Vehicle.Model, ShopName)
	fmt.Fprintf(&sb, "*Invoice #: %s*\n\n", inv.Number)
	sb.WriteString("*Summary:*\n")

	var labor LineItem
	parts := 0
	for _, item := range inv.LineItems {
		if item.Description == laborDescription {
			labor = item
			continue
		}
		fmt.Fprintf(&sb, "- %s (x%d): ₹%.2f\n", item.Description, item.Quantity, item.LineTotal)
		parts++
	}
	if parts == 0 {
		sb.WriteString("- No parts used.\n")
	}
	fmt.Fprintf(&sb, "- Labor: ₹%.2f\n\n", labor.LineTotal)

	sb.WriteString("--------------------\n")
	fmt.Fprintf(&sb, "*Total Due: ₹%.2f*\n", inv.Total)
	sb.WriteString("--------------------\n\n")
	sb.WriteString("Thank you for your business! We appreciate you choosing Corner Tuned.")

	return sb.String()
}
