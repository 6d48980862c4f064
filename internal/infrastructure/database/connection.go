package database

import (
	"context"

	"gorm.io/gorm"
)

// Chave para o contexto que indica se o timezone já foi configurado
type timezoneKey struct{}

// SetTimezoneMiddleware cria um middleware GORM para definir o timezone.
// Datas de auditoria e registros de ponto são sempre lidos em horário de
// Brasília.
func SetTimezoneMiddleware() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		// Verificar se já está processando uma configuração de timezone
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return // Evita recursão infinita
		}

		// Define um contexto marcado para evitar recursão
		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)

		tx := db.WithContext(ctx)
		tx.Exec("SET timezone = 'America/Sao_Paulo'")
	}
}

// RegisterMiddlewares registra os middlewares necessários no GORM
func RegisterMiddlewares(db *gorm.DB) {
	// Apenas no callback de consulta, para evitar overhead nos demais
	db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", SetTimezoneMiddleware())
}
