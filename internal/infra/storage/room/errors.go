package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrRoomNumberTaken возвращается, когда номер комнаты уже занят другой записью
	ErrRoomNumberTaken = errors.New("room.repository: room number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
