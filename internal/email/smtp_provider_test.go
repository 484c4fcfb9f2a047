package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Значения из публичной формы не должны попадать в HTML письма как разметка
func TestNewEnquiryNotification_EscapesClientInput(t *testing.T) {
	msg := NewEnquiryNotification(
		"provider@test.com",
		"Test Events Co.",
		"<script>alert(1)</script>",
		"wedding",
		`Hello <b>there</b> & "goodbye"`,
	)

	assert.Equal(t, []string{"provider@test.com"}, msg.To)
	assert.Contains(t, msg.Subject, "Test Events Co.")
	assert.NotContains(t, msg.BodyHTML, "<script>")
	assert.Contains(t, msg.BodyHTML, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, msg.BodyHTML, "&lt;b&gt;there&lt;/b&gt; &amp; &#34;goodbye&#34;")
}

func TestSMTPProviderValidate(t *testing.T) {
	assert.Error(t, NewSMTPProvider(SMTPConfig{}).Validate())
	assert.Error(t, NewSMTPProvider(SMTPConfig{Host: "smtp.test.com", Port: 587}).Validate())
	assert.NoError(t, NewSMTPProvider(SMTPConfig{
		Host:      "smtp.test.com",
		Port:      587,
		FromEmail: "noreply@test.com",
	}).Validate())
}
