package queue

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись очереди не найдена в магазине
	ErrEntryNotFound = errors.New("queue: entry not found")

	// ErrInvalidTransition возвращается, когда статус записи не допускает действие
	ErrInvalidTransition = errors.New("queue: invalid transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("queue: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("queue: internal error")
)
