package domain

import (
	"errors"
	"fmt"
)

// ValidationError ошибка валидации входных данных (дата, координаты, смещение пояса)
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError создаёт ошибку валидации с человекочитаемой причиной
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// CalculationError ошибка расчёта: сбой эфемеридной библиотеки, неполные
// промежуточные данные, численные краевые случаи. Никогда не содержит сырую
// ошибку библиотеки в клиентском виде - транслируется HTTP-слоем.
type CalculationError struct {
	Reason string
	Err    error
}

func (e *CalculationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Err.Error())
	}
	return e.Reason
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// NewCalculationError создаёт ошибку расчёта, оборачивая причину
func NewCalculationError(reason string, err error) error {
	return &CalculationError{Reason: reason, Err: err}
}

func IsCalculationError(err error) bool {
	var calcErr *CalculationError
	return errors.As(err, &calcErr)
}

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}

// ErrNotFound запись не найдена (карта, пользователь, refresh-токен)
var ErrNotFound = errors.New("not found")
