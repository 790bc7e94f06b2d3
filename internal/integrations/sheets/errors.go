package sheets

import "errors"

var (
	// ErrInternal возвращается при ошибках подготовки или выполнения запроса
	ErrInternal = errors.New("sheets.client: internal error")

	// ErrInvalidResponse возвращается при неожиданном ответе сервиса таблицы
	ErrInvalidResponse = errors.New("sheets.client: invalid response")
)
