package geoprovider

// Position геопозиция пользователя от геосервиса
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ErrorResponse модель ошибки от геосервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
