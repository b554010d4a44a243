package resend

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
}
