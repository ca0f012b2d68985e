package queuestate

import "errors"

var (
	// ErrEntryNotFound возвращается, когда записи нет в переданном снимке очереди
	ErrEntryNotFound = errors.New("queuestate: entry not found")

	// ErrEntryExists возвращается при повторном добавлении записи с тем же ID
	ErrEntryExists = errors.New("queuestate: entry already exists")

	// ErrInvalidTransition возвращается, когда текущий статус не допускает переход
	ErrInvalidTransition = errors.New("queuestate: invalid transition")
)
