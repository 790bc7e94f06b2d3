package notify

import "errors"

var (
	// ErrInternal возвращается при ошибках подготовки или выполнения запроса
	ErrInternal = errors.New("notify.client: internal error")

	// ErrInvalidResponse возвращается при неожиданном ответе транспорта сообщений
	ErrInvalidResponse = errors.New("notify.client: invalid response")
)
