package util

import "errors"

var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrEmailRegistered   = errors.New("el email ya esta registrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya esta en uso")
	ErrInvalidCredential = errors.New("credenciales invalidas")
)
