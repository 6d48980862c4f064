// Package repositories implementa o acesso a dados sobre GORM/Postgres.
//
// Convenções do pacote: toda falha de backend é envolvida em
// entities.ErrDataAccess (registro ausente em entities.ErrNotFound) com a
// causa original na mensagem; ids uuid são gerados no Create quando vazios;
// operações de múltiplos passos (criação de auditoria com snapshot, pergunta
// avulsa com escrita dupla, ocultação com cascata) rodam dentro de uma única
// transação GORM. Nenhuma operação é repetida automaticamente.
package repositories
