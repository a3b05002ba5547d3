package occupancy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Entry закэшированный результат расчёта загрузки
type Entry struct {
	Rate         float64 `json:"rate"`
	OccupiedDays int     `json:"occupiedDays"`
}

// Cache хранит загрузку номера в хэше <prefix>:room:<id>, поле - окно расчёта.
// Так все окна номера сбрасываются одним DEL при изменении бронирований.
// Нулевой клиент означает выключенный кэш: всегда промах, запись игнорируется.
type Cache struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

// NewCache создает кэш загрузки номеров
func NewCache(client RedisClient, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) roomKey(roomID int64) string {
	return c.prefix + ":room:" + strconv.FormatInt(roomID, 10)
}

func windowField(window domain.OccupancyWindow) string {
	return window.End.Format(domain.DateFormat) + ":" + strconv.Itoa(window.LengthDays)
}

// Get возвращает запись и признак попадания
func (c *Cache) Get(ctx context.Context, roomID int64, window domain.OccupancyWindow) (*Entry, bool, error) {
	if !c.enabled() {
		return nil, false, nil
	}

	raw, err := c.client.HGet(ctx, c.roomKey(roomID), windowField(window)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - room %d: %v", ErrCacheRead, roomID, err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, fmt.Errorf("%w: Get - room %d: %v", ErrCorruptedEntry, roomID, err)
	}

	return &entry, true, nil
}

// Set сохраняет запись; TTL продлевается для всего хэша номера
func (c *Cache) Set(ctx context.Context, roomID int64, window domain.OccupancyWindow, entry Entry) error {
	if !c.enabled() {
		return nil
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCacheWrite, err)
	}

	key := c.roomKey(roomID)
	if err := c.client.HSet(ctx, key, windowField(window), payload).Err(); err != nil {
		return fmt.Errorf("%w: Set - room %d: %v", ErrCacheWrite, roomID, err)
	}
	if err := c.client.Expire(ctx, key, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - expire room %d: %v", ErrCacheWrite, roomID, err)
	}

	return nil
}

// InvalidateRoom удаляет все закэшированные окна номера
func (c *Cache) InvalidateRoom(ctx context.Context, roomID int64) error {
	if !c.enabled() {
		return nil
	}

	if err := c.client.Del(ctx, c.roomKey(roomID)).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateRoom - room %d: %v", ErrCacheWrite, roomID, err)
	}
	return nil
}
