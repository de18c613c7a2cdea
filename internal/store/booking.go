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

// BookingStore хранит коллекцию заявок на обслуживание.
type BookingStore struct {
	mu       sync.Mutex
	bookings []model.Booking
	storage  Storage
	logger   *zap.SugaredLogger
}

// NewBookingStore создаёт хранилище заявок, загружая коллекцию из
// долговременного хранилища. При отсутствии или повреждении сохранённых
// данных коллекция инициализируется стартовым набором.
func NewBookingStore(ctx context.Context, st Storage, logger *zap.SugaredLogger) *BookingStore {
	s := &BookingStore{
		storage: st,
		logger:  logger,
	}
	s.bookings = s.load(ctx)
	return s
}

func (s *BookingStore) load(ctx context.Context) []model.Booking {
	raw, err := s.storage.Load(ctx, storage.KeyBookings)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Errorw("load bookings", "error", err)
		}
		return seedBookings(time.Now())
	}

	var bookings []model.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		s.logger.Errorw("parse stored bookings, falling back to seed data", "error", err)
		return seedBookings(time.Now())
	}
	return bookings
}

// persist сохраняет коллекцию целиком. Ошибка сохранения не прерывает работу.
func (s *BookingStore) persist(ctx context.Context) {
	raw, err := json.Marshal(s.bookings)
	if err != nil {
		s.logger.Errorw("marshal bookings", "error", err)
		return
	}
	if err := s.storage.Save(ctx, storage.KeyBookings, string(raw)); err != nil {
		s.logger.Errorw("save bookings", "error", err)
	}
}

// Add присваивает заявке следующий идентификатор и добавляет её в коллекцию.
// Возвращает сохранённую заявку.
func (s *BookingStore) Add(ctx context.Context, booking model.Booking) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = nextID(bookingIDs(s.bookings))
	s.bookings = append(s.bookings, cloneBooking(booking))
	s.persist(ctx)
	return booking
}

// Update заменяет заявку с совпадающим идентификатором. Если заявки с таким
// идентификатором нет, коллекция не меняется.
func (s *BookingStore) Update(ctx context.Context, booking model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == booking.ID {
			s.bookings[i] = cloneBooking(booking)
			s.persist(ctx)
			return
		}
	}
}

// Get возвращает заявку по идентификатору.
func (s *BookingStore) Get(id int) (model.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return cloneBooking(b), true
		}
	}
	return model.Booking{}, false
}

// List возвращает все заявки в порядке добавления.
func (s *BookingStore) List() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		res = append(res, cloneBooking(b))
	}
	return res
}

// ListByStatus возвращает заявки с указанным статусом, сохраняя порядок добавления.
func (s *BookingStore) ListByStatus(status model.ServiceStatus) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []model.Booking
	for _, b := range s.bookings {
		if b.Status == status {
			res = append(res, cloneBooking(b))
		}
	}
	return res
}

func bookingIDs(bookings []model.Booking) []int {
	ids := make([]int, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}

// cloneBooking копирует заявку вместе со вложенными срезами, чтобы вызывающий
// код не мог изменить коллекцию в обход хранилища.
func cloneBooking(b model.Booking) model.Booking {
	c := b
	if b.Parts != nil {
		c.Parts = make([]model.Part, len(b.Parts))
		copy(c.Parts, b.Parts)
	}
	if b.Messages != nil {
		c.Messages = make([]model.Message, len(b.Messages))
		copy(c.Messages, b.Messages)
	}
	return c
}
