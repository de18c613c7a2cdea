// Package storage содержит реализации долговременного хранилища коллекций.
//
// Каждая коллекция сервиса сохраняется целиком под собственным ключом в виде
// сериализованного JSON-текста. Хранилище ничего не знает о структуре данных.
package storage

import "errors"

// Ключи коллекций сервиса.
const (
	KeyBookings     = "bookings"
	KeyShoppingList = "shopping-list"
)

// ErrNotFound возвращается, если под ключом ещё ничего не сохранено.
var ErrNotFound = errors.New("collection not found")
