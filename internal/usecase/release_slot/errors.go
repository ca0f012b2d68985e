package release_slot

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("release_slot: booking not found")

	// ErrCannotRelease возвращается, когда бронирование не в pending/confirmed
	ErrCannotRelease = errors.New("release_slot: booking cannot be released")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_slot: internal error")
)
