package staffservice

import "errors"

var (
	// ErrShopNotFound возвращается, когда магазин неизвестен сервису персонала
	ErrShopNotFound = errors.New("staffservice client: shop not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Вызывающий использует число мест из настроек магазина
	ErrServiceDegraded = errors.New("staffservice unavailable: graceful degradation applied")
)
