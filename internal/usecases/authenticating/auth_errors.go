package authenticating

import "errors"

var (
	// ErrInvalidCredentials indica email ou senha incorretos
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrUserDisabled indica usuário desativado
	ErrUserDisabled = errors.New("usuário desativado")

	// ErrUserNotFound indica usuário inexistente
	ErrUserNotFound = errors.New("usuário não encontrado")

	// ErrUserAlreadyExists indica email já cadastrado
	ErrUserAlreadyExists = errors.New("usuário já existe")

	// ErrMissingRequiredData indica campos obrigatórios ausentes
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// ErrInvalidToken indica token JWT inválido ou expirado
	ErrInvalidToken = errors.New("token inválido")
)
