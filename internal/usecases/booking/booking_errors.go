package booking

import "errors"

var (
	// ErrBookingNotFound indica que o agendamento não existe
	ErrBookingNotFound = errors.New("agendamento não encontrado")

	// ErrInvalidStatus indica um status fora do enum
	ErrInvalidStatus = errors.New("status de agendamento inválido")

	// ErrInvalidTransition indica uma transição de status fora da lista permitida
	ErrInvalidTransition = errors.New("transição de status não permitida")

	// ErrMissingRequiredData indica campos obrigatórios ausentes
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)
