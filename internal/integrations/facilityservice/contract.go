package facilityservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TokenProvider отдает bearer-токен для исходящих вызовов.
// Получение и обновление токена лежит на внешнем auth-сервисе.
type TokenProvider interface {
	Token() string
}
