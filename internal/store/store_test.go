package store

import (
	"context"
	"testing"

	"github.com/mmeshcher/motoshop-system/internal/storage"
)

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want int
	}{
		{
			name: "empty collection",
			ids:  nil,
			want: 1,
		},
		{
			name: "sequential ids",
			ids:  []int{1, 2, 3},
			want: 4,
		},
		{
			name: "ids with gaps",
			ids:  []int{5, 2, 9},
			want: 10,
		},
		{
			name: "single id",
			ids:  []int{7},
			want: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextID(tt.ids)
			if got != tt.want {
				t.Fatalf("nextID(%v) = %d, want %d", tt.ids, got, tt.want)
			}

			for _, id := range tt.ids {
				if got <= id {
					t.Fatalf("nextID(%v) = %d is not greater than existing id %d", tt.ids, got, id)
				}
			}
		})
	}
}

// stubStorage — хранилище в памяти для тестов store.
type stubStorage struct {
	data    map[string]string
	loadErr error
	saveErr error
	saves   int
}

func newStubStorage() *stubStorage {
	return &stubStorage{data: map[string]string{}}
}

func (s *stubStorage) Load(_ context.Context, key string) (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	value, ok := s.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

func (s *stubStorage) Save(_ context.Context, key, value string) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[key] = value
	return nil
}

func (s *stubStorage) Close() error { return nil }
