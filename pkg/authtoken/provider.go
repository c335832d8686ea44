// Package authtoken содержит провайдеры bearer-токенов для интеграционных
// клиентов. Получение и обновление токенов лежит на стороне внешнего
// auth-сервиса; здесь только их выдача клиентам.
package authtoken

// StaticProvider отдает фиксированный сервисный токен из конфигурации.
type StaticProvider struct {
	token string
}

// NewStaticProvider создает провайдер с фиксированным токеном.
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

// Token возвращает текущий bearer-токен.
func (p *StaticProvider) Token() string {
	return p.token
}
