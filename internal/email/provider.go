package email

// Email - простое сообщение
type Email struct {
	To       []string
	Subject  string
	BodyHTML string
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет сообщение
	Send(email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}
