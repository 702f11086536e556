package util

import "errors"

var (
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameRegistered = errors.New("el nombre de usuario ya está registrado")
	ErrProfessorNotFound  = errors.New("el profesor especificado no existe")
	ErrGroupNotAssigned   = errors.New("el grupo especificado no está asignado a este profesor")
	ErrTokenNotFound      = errors.New("token no encontrado")
	ErrTokenFormat        = errors.New("el token debe tener exactamente 5 caracteres")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrIdentityDisabled   = errors.New("identity provider disabled")
)
