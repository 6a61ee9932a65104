package orchestrating

import "errors"

var (
	// ErrNoProvidersEnabled indica que a configuração não habilitou
	// nenhum provider: o orquestrador não tem o que orquestrar
	ErrNoProvidersEnabled = errors.New("no providers enabled in configuration")

	// ErrProviderNotConfigured indica que o provider exigido pela
	// operação não está habilitado
	ErrProviderNotConfigured = errors.New("required provider not configured")

	// ErrAllProvidersFailed indica que todos os providers habilitados
	// para a consulta falharam: não há agregado parcial a devolver
	ErrAllProvidersFailed = errors.New("all enabled providers failed")
)
