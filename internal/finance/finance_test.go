package finance

import (
	"testing"
	"time"

	"github.com/mmeshcher/motoshop-system/internal/model"
)

func TestTotalCost(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    float64
	}{
		{
			name: "parts and labor",
			booking: model.Booking{
				Parts: []model.Part{
					{Name: "Filter", Quantity: 1, Price: 15},
					{Name: "Oil", Quantity: 4, Price: 18},
				},
				LaborCost: 120,
			},
			want: 207,
		},
		{
			name: "no parts",
			booking: model.Booking{
				Parts:     []model.Part{},
				LaborCost: 50,
			},
			want: 50,
		},
		{
			name:    "empty booking",
			booking: model.Booking{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalCost(tt.booking)
			if got != tt.want {
				t.Fatalf("TotalCost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthlyRevenue(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)

	completedThisMonth := model.Booking{
		Status:      model.StatusCompleted,
		BookingDate: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local),
		LaborCost:   100,
	}
	pendingThisMonth := model.Booking{
		Status:      model.StatusPending,
		BookingDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local),
		LaborCost:   999,
	}
	// Последний день февраля: в пределах 30 дней от now, но другой календарный месяц.
	completedLastMonth := model.Booking{
		Status:      model.StatusCompleted,
		BookingDate: time.Date(2026, time.February, 28, 23, 0, 0, 0, time.Local),
		LaborCost:   500,
	}
	completedLastYear := model.Booking{
		Status:      model.StatusCompleted,
		BookingDate: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local),
		LaborCost:   700,
	}

	bookings := []model.Booking{completedThisMonth, pendingThisMonth, completedLastMonth, completedLastYear}

	got := MonthlyRevenue(bookings, now)
	if got != 100 {
		t.Fatalf("MonthlyRevenue = %v, want 100", got)
	}

	if got := MonthlyRevenue(nil, now); got != 0 {
		t.Fatalf("MonthlyRevenue(empty) = %v, want 0", got)
	}
}

func TestMonthlyExpense(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)

	thisMonth := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.Local)
	lastMonth := time.Date(2026, time.February, 28, 10, 0, 0, 0, time.Local)

	items := []model.ShoppingListItem{
		{Name: "Brake Cleaner", Price: 12.5, IsBought: true, BoughtDate: &thisMonth},
		{Name: "Shop Rags", Price: 25, IsBought: true, BoughtDate: &lastMonth},
		{Name: "Chain Lube", Price: 16},
	}

	got := MonthlyExpense(items, now)
	if got != 12.5 {
		t.Fatalf("MonthlyExpense = %v, want 12.5", got)
	}
}

func TestMonthlyProfit(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)
	boughtNow := now

	bookings := []model.Booking{
		{
			Status:      model.StatusCompleted,
			BookingDate: now,
			Parts:       []model.Part{{Name: "Filter", Quantity: 1, Price: 15}},
			LaborCost:   85,
		},
	}
	items := []model.ShoppingListItem{
		{Name: "Degreaser", Price: 30, IsBought: true, BoughtDate: &boughtNow},
	}

	got := MonthlyProfit(bookings, items, now)
	if got != 70 {
		t.Fatalf("MonthlyProfit = %v, want 70", got)
	}
}

func TestMonthlyProfit_EmptyShoppingList(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)

	bookings := []model.Booking{
		{Status: model.StatusCompleted, BookingDate: now, LaborCost: 200},
	}

	if got := TotalBoughtCost(nil); got != 0 {
		t.Fatalf("TotalBoughtCost(empty) = %v, want 0", got)
	}
	if got := TotalListCost(nil); got != 0 {
		t.Fatalf("TotalListCost(empty) = %v, want 0", got)
	}

	revenue := MonthlyRevenue(bookings, now)
	if got := MonthlyProfit(bookings, nil, now); got != revenue {
		t.Fatalf("MonthlyProfit = %v, want %v", got, revenue)
	}
}

func TestListTotals(t *testing.T) {
	bought := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)

	items := []model.ShoppingListItem{
		{Name: "Chain Lube", Price: 15.25},
		{Name: "Brake Cleaner", Price: 12.50, IsBought: true, BoughtDate: &bought},
		{Name: "Bolts", Price: 8},
	}

	if got := TotalBoughtCost(items); got != 12.50 {
		t.Fatalf("TotalBoughtCost = %v, want 12.50", got)
	}
	if got := TotalListCost(items); got != 35.75 {
		t.Fatalf("TotalListCost = %v, want 35.75", got)
	}
}
