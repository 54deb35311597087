package domain

import "errors"

// Доменные ошибки для бизнес-логики
var (
	// ErrMissingInput - в запросе отсутствует текст отзыва
	ErrMissingInput = errors.New("review text is required")

	// ErrUserNotFound - учётная запись с таким именем не существует
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials - пароль не совпадает с сохранённым хешем
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken - имя пользователя уже занято
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNotFound - ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")
)

// ErrorCode представляет код ошибки для логов и ответов
type ErrorCode string

const (
	CodeMissingInput       ErrorCode = "MISSING_INPUT"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUsernameTaken      ErrorCode = "USERNAME_TAKEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeInternal           ErrorCode = "INTERNAL"
)

// MapErrorToCode преобразует доменную ошибку в код
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrMissingInput):
		return CodeMissingInput
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUsernameTaken):
		return CodeUsernameTaken
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}
