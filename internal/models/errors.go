package models

import "errors"

// Error constants for entregador operations
var (
	ErrDuplicateCPF       = errors.New("cpf already registered")
	ErrEntregadorNotFound = errors.New("entregador not found")
)
