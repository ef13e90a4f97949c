package domain

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrRuleNotFound     = errors.New("overtime rule not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidShift     = errors.New("invalid shift: end time must be after start time")
	ErrInvalidRule      = errors.New("invalid overtime rule")
	ErrInvalidSettings  = errors.New("invalid wage settings")
)

// IsNotFound сообщает, что запрошенная сущность отсутствует.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrShiftNotFound) ||
		errors.Is(err, ErrRuleNotFound) ||
		errors.Is(err, ErrEmployeeNotFound)
}

// IsValidation сообщает об ошибке во входных данных пользователя.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidShift) ||
		errors.Is(err, ErrInvalidRule) ||
		errors.Is(err, ErrInvalidSettings)
}
