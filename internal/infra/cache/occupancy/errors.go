package occupancy

import "errors"

var (
	// ErrCacheRead ошибка чтения из Redis (кроме промаха)
	ErrCacheRead = errors.New("occupancy.cache: read failed")

	// ErrCacheWrite ошибка записи в Redis
	ErrCacheWrite = errors.New("occupancy.cache: write failed")

	// ErrCorruptedEntry в Redis лежит значение, которое не удалось разобрать
	ErrCorruptedEntry = errors.New("occupancy.cache: corrupted entry")
)
