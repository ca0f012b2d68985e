package waitlist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись листа ожидания не найдена в магазине
	ErrEntryNotFound = errors.New("waitlist: entry not found")

	// ErrInvalidTransition возвращается, когда статус записи не допускает действие
	ErrInvalidTransition = errors.New("waitlist: invalid transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("waitlist: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("waitlist: internal error")
)
