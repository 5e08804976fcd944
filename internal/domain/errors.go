package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee with this id already exists")
	ErrInvalidStatus         = errors.New("status must be either Present or Absent")
	ErrInvalidDate           = errors.New("date must be a valid calendar date in YYYY-MM-DD format")
	ErrConstraintViolation   = errors.New("storage constraint violated")
)
