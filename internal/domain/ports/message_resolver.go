package ports

import "golang.org/x/text/language"

// MessageResolver traduz uma chave de mensagem para texto legível.
// Nunca falha: quando a chave não é encontrada retorna fallback.
type MessageResolver interface {
	Resolve(key string, args []any, fallback string, locale language.Tag) string
}
