package entities

import "errors"

// Erros de domínio. Toda falha de operação pública envolve ("wraps") um
// destes sentinelas para que os handlers mapeiem o status HTTP correto.
var (
	// ErrDataAccess indica falha em qualquer chamada ao backend de dados
	ErrDataAccess = errors.New("erro de acesso a dados")

	// ErrAuthentication indica ausência de usuário autenticado em uma
	// operação de escrita que exige um
	ErrAuthentication = errors.New("usuário não autenticado")

	// ErrValidation indica entrada inválida (texto vazio, peso fora de
	// 0-100, auditoria não carregada)
	ErrValidation = errors.New("entrada inválida")

	// ErrNotFound indica registro inexistente
	ErrNotFound = errors.New("registro não encontrado")
)
