package service

import "errors"

var (
	// ErrInvalidInput - ошибка клиентских данных (HTTP 400)
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound - район не найден или запрос ничего не нашел (HTTP 404)
	ErrNotFound = errors.New("not found")
)
