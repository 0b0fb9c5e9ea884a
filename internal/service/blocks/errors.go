package blocks

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("block not found")

	// ErrProfessionalNotFound возвращается, когда мастер блокировки не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInvalidRange возвращается при перевернутом или пустом интервале блокировки
	ErrInvalidRange = errors.New("invalid block range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
