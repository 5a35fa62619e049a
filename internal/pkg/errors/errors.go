package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных
	// (в том числе ссылка на несуществующую категорию).
	ErrValidation = errors.New("validation failed")

	// ErrBadRequest используется, когда тело запроса отсутствует или не разбирается.
	ErrBadRequest = errors.New("bad request")

	// ErrUnprocessable используется, когда операцию невозможно выполнить
	// (неверная страница, неизвестная категория, неудачное удаление).
	ErrUnprocessable = errors.New("unprocessable entity")

	// ErrConflict используется для конфликтов состояния хранилища.
	ErrConflict = errors.New("resource state conflict")
)
