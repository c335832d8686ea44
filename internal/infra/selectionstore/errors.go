package selectionstore

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда выборка не найдена
	// (не создавалась, истек TTL или была очищена).
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("selectionstore: internal error")
)
