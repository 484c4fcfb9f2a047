package app

import "evently_backend/internal/email"

// MockEmailProvider используется для тестов и локальной разработки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }
func (m *MockEmailProvider) Validate() error             { return nil }
