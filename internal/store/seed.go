package store

import (
	"time"

	"github.com/mmeshcher/motoshop-system/internal/model"
)

// seedBookings возвращает стартовый набор заявок. Используется, когда в
// хранилище ещё нет данных или сохранённые данные не удалось разобрать.
func seedBookings(now time.Time) []model.Booking {
	return []model.Booking{
		{
			ID:          1,
			Customer:    model.Customer{Name: "Alice Johnson", Contact: "555-0101"},
			Motorcycle:  model.Motorcycle{Make: "Ducati", Model: "Panigale V4", RegNumber: "DUCATI1"},
			Description: "Annual service and checkup. Check brake fluid.",
			Status:      model.StatusPending,
			BookingDate: now.Add(-2 * 24 * time.Hour),
			Parts:       []model.Part{},
			Messages:    []model.Message{},
		},
		{
			ID:          2,
			Customer:    model.Customer{Name: "Bob Smith", Contact: "bob@example.com"},
			Motorcycle:  model.Motorcycle{Make: "Kawasaki", Model: "Ninja ZX-10R", RegNumber: "Kawi10R"},
			Description: "New set of tires needed. Pirelli Diablo Supercorsa.",
			Status:      model.StatusInProgress,
			BookingDate: now.Add(-5 * 24 * time.Hour),
			Parts: []model.Part{
				{Name: "Pirelli Diablo Supercorsa (Front)", Quantity: 1, Price: 210},
				{Name: "Pirelli Diablo Supercorsa (Rear)", Quantity: 1, Price: 280},
			},
			LaborCost: 75,
			Messages:  []model.Message{},
		},
		{
			ID:          3,
			Customer:    model.Customer{Name: "Charlie Brown", Contact: "555-0103"},
			Motorcycle:  model.Motorcycle{Make: "Honda", Model: "CBR1000RR", RegNumber: "HONDA1K"},
			Description: "Engine making a strange ticking noise at high RPM.",
			Status:      model.StatusAwaitingParts,
			BookingDate: now.Add(-10 * 24 * time.Hour),
			Parts: []model.Part{
				{Name: "OEM Cam Chain Tensioner", Quantity: 1, Price: 95},
			},
			LaborCost: 250,
			Messages:  []model.Message{},
		},
		{
			ID:          4,
			Customer:    model.Customer{Name: "Diana Prince", Contact: "diana@example.com"},
			Motorcycle:  model.Motorcycle{Make: "Yamaha", Model: "YZF-R1", RegNumber: "R1PRNCE"},
			Description: "Oil change and chain adjustment.",
			Status:      model.StatusCompleted,
			BookingDate: now,
			Parts: []model.Part{
				{Name: "Motul 7100 10W-40 Oil", Quantity: 4, Price: 18},
				{Name: "OEM Oil Filter", Quantity: 1, Price: 15},
			},
			LaborCost: 120,
			Messages:  []model.Message{},
		},
	}
}

// seedShoppingList возвращает стартовый список покупок.
func seedShoppingList(now time.Time) []model.ShoppingListItem {
	boughtToday := now
	boughtEarlier := now.Add(-3 * 24 * time.Hour)

	return []model.ShoppingListItem{
		{ID: 1, Name: "Chain Lube (Teflon)", Price: 15.99},
		{ID: 2, Name: "Brake Cleaner (2 Cans)", Price: 12.50, IsBought: true, BoughtDate: &boughtToday},
		{ID: 3, Name: "Set of M6 bolts", Price: 8.00},
		{ID: 4, Name: "Shop Rags (50-pack)", Price: 25.00, IsBought: true, BoughtDate: &boughtEarlier},
	}
}
