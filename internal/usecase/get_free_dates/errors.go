package get_free_dates

import "errors"

var (
	ErrInternal = errors.New("get_free_dates.usecase: internal error")
)
