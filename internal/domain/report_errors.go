package domain

import "errors"

// Erros fatais do pipeline de reconciliação. Os dois primeiros abortam a
// execução inteira; os demais são absorvidos como linhas sem dados de
// plataforma e nunca escalam.
var (
	// ErrRateNotFound indica taxa de câmbio ausente para a moeda pedida
	ErrRateNotFound = errors.New("exchange rate not found")

	// ErrAuthExpired indica credencial inválida ou expirada na plataforma de anúncios
	ErrAuthExpired = errors.New("ad platform authorization expired")

	// ErrPlatformUnavailable indica falha de transporte ao falar com a plataforma
	ErrPlatformUnavailable = errors.New("ad platform unavailable")
)
