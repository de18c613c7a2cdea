// Package finance содержит чистые функции расчёта финансовых показателей.
//
// Показатели не кэшируются и пересчитываются при каждом обращении по текущему
// содержимому коллекций.
package finance

import (
	"time"

	"github.com/mmeshcher/motoshop-system/internal/model"
)

// TotalPartsCost возвращает стоимость всех запчастей заявки.
func TotalPartsCost(booking model.Booking) float64 {
	var total float64
	for _, p := range booking.Parts {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

// TotalCost возвращает полную стоимость заявки: запчасти плюс работа.
func TotalCost(booking model.Booking) float64 {
	return TotalPartsCost(booking) + booking.LaborCost
}

// MonthlyRevenue возвращает выручку за календарный месяц момента now:
// сумму полной стоимости завершённых заявок, датированных этим месяцем.
func MonthlyRevenue(bookings []model.Booking, now time.Time) float64 {
	var total float64
	for _, b := range bookings {
		if b.Status != model.StatusCompleted {
			continue
		}
		if !sameMonth(b.BookingDate, now) {
			continue
		}
		total += TotalCost(b)
	}
	return total
}

// MonthlyExpense возвращает расходы за календарный месяц момента now:
// сумму цен позиций списка покупок, купленных в этом месяце.
func MonthlyExpense(items []model.ShoppingListItem, now time.Time) float64 {
	var total float64
	for _, it := range items {
		if !it.IsBought || it.BoughtDate == nil {
			continue
		}
		if !sameMonth(*it.BoughtDate, now) {
			continue
		}
		total += it.Price
	}
	return total
}

// MonthlyProfit возвращает прибыль за календарный месяц момента now.
func MonthlyProfit(bookings []model.Booking, items []model.ShoppingListItem, now time.Time) float64 {
	return MonthlyRevenue(bookings, now) - MonthlyExpense(items, now)
}

// TotalBoughtCost возвращает суммарную цену купленных позиций списка.
func TotalBoughtCost(items []model.ShoppingListItem) float64 {
	var total float64
	for _, it := range items {
		if it.IsBought {
			total += it.Price
		}
	}
	return total
}

// TotalListCost возвращает суммарную цену всех позиций списка.
func TotalListCost(items []model.ShoppingListItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return total
}

// sameMonth сравнивает календарный месяц и год двух моментов в локальном
// времени. Сравнение по значению даты, а не по разнице длительностей.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
