// Package selectionstore хранит незавершенные выборки слотов в Redis.
// Выборка хранится как временный объект с TTL: она живет, пока пользователь собирает
// корзину слотов, и удаляется при отмене или успешной отправке.
package selectionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
)

const keyPrefix = "selection:"

// Store redis-хранилище выборок слотов
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore создает новый экземпляр хранилища выборок
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		ttl: ttl,
	}
}

// Save сохраняет выборку, продлевая TTL
func (s *Store) Save(ctx context.Context, selection *domain.Selection) error {
	payload, err := json.Marshal(selection)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal selection id=%s: %v", ErrInternal, selection.ID, err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+selection.ID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: failed to save selection id=%s: %v", ErrInternal, selection.ID, err)
	}

	return nil
}

// Get получает выборку по ID
func (s *Store) Get(ctx context.Context, selectionID string) (*domain.Selection, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+selectionID).Bytes()
	if err == redis.Nil {
		return nil, ErrSelectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get selection id=%s: %v", ErrInternal, selectionID, err)
	}

	var selection domain.Selection
	if err := json.Unmarshal(payload, &selection); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal selection id=%s: %v", ErrInternal, selectionID, err)
	}

	return &selection, nil
}

// Delete удаляет выборку. Отсутствие ключа не считается ошибкой.
func (s *Store) Delete(ctx context.Context, selectionID string) error {
	if err := s.rdb.Del(ctx, keyPrefix+selectionID).Err(); err != nil {
		return fmt.Errorf("%w: failed to delete selection id=%s: %v", ErrInternal, selectionID, err)
	}
	return nil
}
