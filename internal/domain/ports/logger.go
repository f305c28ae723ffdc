package ports

// Logger define a interface para logging estruturado.
// args são pares chave/valor: logger.Error("msg", "error", err)
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}
