package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/motoshop-system/internal/model"
	"github.com/mmeshcher/motoshop-system/internal/storage"
)

// ShoppingStore хранит список покупок мастерской.
type ShoppingStore struct {
	mu      sync.Mutex
	items   []model.ShoppingListItem
	storage Storage
	logger  *zap.SugaredLogger
}

// NewShoppingStore создаёт хранилище списка покупок, загружая коллекцию из
// долговременного хранилища с откатом на стартовый набор.
func NewShoppingStore(ctx context.Context, st Storage, logger *zap.SugaredLogger) *ShoppingStore {
	s := &ShoppingStore{
		storage: st,
		logger:  logger,
	}
	s.items = s.load(ctx)
	return s
}

func (s *ShoppingStore) load(ctx context.Context) []model.ShoppingListItem {
	raw, err := s.storage.Load(ctx, storage.KeyShoppingList)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorw("load shopping list", "error", err)
		}
		return seedShoppingList(time.Now())
	}

	var items []model.ShoppingListItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Errorw("parse stored shopping list, falling back to seed data", "error", err)
		return seedShoppingList(time.Now())
	}
	return items
}

func (s *ShoppingStore) persist(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Errorw("marshal shopping list", "error", err)
		return
	}
	if err := s.storage.Save(ctx, storage.KeyShoppingList, string(raw)); err != nil {
		s.logger.Errorw("save shopping list", "error", err)
	}
}

// Add добавляет позицию в список: присваивает следующий идентификатор,
// сбрасывает признак покупки и дату. Возвращает сохранённую позицию.
func (s *ShoppingStore) Add(ctx context.Context, item model.ShoppingListItem) model.ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = nextID(itemIDs(s.items))
	item.IsBought = false
	item.BoughtDate = nil
	s.items = append(s.items, item)
	s.persist(ctx)
	return item
}

// Update заменяет позицию с совпадающим идентификатором. Если позиции нет,
// список не меняется.
func (s *ShoppingStore) Update(ctx context.Context, item model.ShoppingListItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID == item.ID {
			s.items[i] = item
			s.persist(ctx)
			return
		}
	}
}

// Remove удаляет позицию по идентификатору. Отсутствующий идентификатор — не ошибка.
func (s *ShoppingStore) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// ToggleBought переключает признак покупки позиции. При переходе в "куплено"
// фиксируется текущий момент, при обратном переходе дата очищается.
func (s *ShoppingStore) ToggleBought(ctx context.Context, id int) (model.ShoppingListItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID != id {
			continue
		}

		it.IsBought = !it.IsBought
		if it.IsBought {
			now := time.Now()
			it.BoughtDate = &now
		} else {
			it.BoughtDate = nil
		}

		s.items[i] = it
		s.persist(ctx)
		return it, true
	}
	return model.ShoppingListItem{}, false
}

// List возвращает все позиции списка в порядке добавления.
func (s *ShoppingStore) List() []model.ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]model.ShoppingListItem, len(s.items))
	copy(res, s.items)
	return res
}

func itemIDs(items []model.ShoppingListItem) []int {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
