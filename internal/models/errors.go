package models

import "errors"

// Ошибки доменных решений - проверяются через errors.Is
var (
	ErrNotFound                = errors.New("not found")
	ErrValidation              = errors.New("validation failed")
	ErrInsufficientPoints      = errors.New("not enough points")
	ErrQRExpired               = errors.New("qr code expired")
	ErrMissionAlreadyActivated = errors.New("mission already activated")
	ErrVoucherExhausted        = errors.New("voucher generation exhausted")

	// Коллизия кода ваучера - сигнал на повторную генерацию, наружу не отдается
	ErrVoucherCollision = errors.New("voucher code collision")
)
