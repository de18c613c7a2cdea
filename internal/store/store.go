// Package store содержит авторитетные коллекции сервиса, живущие в памяти.
//
// Коллекции загружаются из долговременного хранилища при старте и целиком
// сохраняются после каждой мутации. Ошибка сохранения логируется и не
// прерывает работу: источником истины в рамках сессии остаётся память.
package store

import "context"

// Storage описывает контракт долговременного хранилища коллекций.
type Storage interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Close() error
}

// nextID возвращает идентификатор для новой записи: 1 для пустой коллекции,
// иначе максимальный существующий идентификатор плюс один.
func nextID(ids []int) int {
	if len(ids) == 0 {
		return 1
	}
	maxID := ids[0]
	for _, id := range ids[1:] {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
