// Package validation содержит функции валидации входных данных.
package validation

import (
	"strings"

	"github.com/mmeshcher/motoshop-system/internal/model"
)

// IsNonEmpty сообщает, содержит ли строка хоть один непробельный символ.
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidPart проверяет позицию запчасти: непустое наименование,
// положительное количество и неотрицательную цену.
func IsValidPart(p model.Part) bool {
	return IsNonEmpty(p.Name) && p.Quantity > 0 && p.Price >= 0
}

// IsValidPrice проверяет, что цена неотрицательна.
func IsValidPrice(price float64) bool {
	return price >= 0
}
