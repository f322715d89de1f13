package notification

import (
	"bytes"
	"testing"

	"datawise-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() SMTPConfig {
	return SMTPConfig{
		Host:     "smtp.example.com",
		Port:     465,
		Username: "adm@example.com",
		Password: "secret",
		From:     "adm@example.com",
	}
}

func TestNewSMTPSender_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SMTPConfig)
		errMsg string
	}{
		{"missing host", func(c *SMTPConfig) { c.Host = "" }, "host"},
		{"bad port", func(c *SMTPConfig) { c.Port = 0 }, "port"},
		{"missing sender", func(c *SMTPConfig) { c.From = "" }, "sender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			_, err := NewSMTPSender(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewSMTPConfig(t *testing.T) {
	cfg := NewSMTPConfig(&config.Config{
		SMTPHost:   "smtp.hostinger.com",
		SMTPPort:   465,
		SMTPUser:   "u",
		SMTPPass:   "p",
		SMTPSender: "adm@datawiseservice.com",
	})

	assert.Equal(t, "smtp.hostinger.com", cfg.Host)
	assert.Equal(t, 465, cfg.Port)
	assert.Equal(t, "adm@datawiseservice.com", cfg.From)
}

func TestBuildMessage(t *testing.T) {
	sender, err := NewSMTPSender(testConfig())
	require.NoError(t, err)

	msg, err := sender.BuildMessage("new.admin@example.com", "Bem-vindo", "Seu usuário foi criado.")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "new.admin@example.com")
	assert.Contains(t, raw, "Subject: Bem-vindo")
	assert.Contains(t, raw, "adm@example.com")
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	sender, err := NewSMTPSender(testConfig())
	require.NoError(t, err)

	_, err = sender.BuildMessage("not an address", "s", "b")
	assert.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	implicit, err := NewSMTPSender(testConfig())
	require.NoError(t, err)
	assert.Len(t, implicit.clientOptions(), 5)

	cfg := testConfig()
	cfg.Port = 587
	cfg.Username = ""
	starttls, err := NewSMTPSender(cfg)
	require.NoError(t, err)
	assert.Len(t, starttls.clientOptions(), 2)
}
