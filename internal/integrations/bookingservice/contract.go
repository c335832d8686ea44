package bookingservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TokenProvider отдает bearer-токен для исходящих вызовов.
type TokenProvider interface {
	Token() string
}
