package staffservice

// Staff модель сотрудника из сервиса персонала
type Staff struct {
	ID       string `json:"id"`
	ShopID   string `json:"shop_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// StaffListResponse ответ со списком сотрудников магазина
type StaffListResponse struct {
	Staff []Staff `json:"staff"`
}

// ErrorResponse модель ошибки от сервиса персонала
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
