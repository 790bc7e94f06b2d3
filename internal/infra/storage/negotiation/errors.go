package negotiation

import "errors"

var (
	// ErrNegotiationNotFound возвращается, когда связь переноса не найдена
	ErrNegotiationNotFound = errors.New("negotiation.repository: negotiation not found")

	// ErrAlreadyExists возвращается, когда для оригинальной записи уже открыт перенос
	ErrAlreadyExists = errors.New("negotiation.repository: negotiation already exists for booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("negotiation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("negotiation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("negotiation.repository: failed to scan row")
)
