package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	var cfg Config
	cfg.Auth.VerificationCodeTTL = 5 * time.Minute
	cfg.Auth.VerificationCodeLength = 6
	cfg.Auth.DeliveryFailurePolicy = DeliveryFailureLog
	cfg.Auth.CodeGenerator = CodeGeneratorCrypto
	cfg.SMS.Provider = SMSProviderLog
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "fail policy with hotp and sns", mutate: func(c *Config) {
			c.Auth.DeliveryFailurePolicy = DeliveryFailureFail
			c.Auth.CodeGenerator = CodeGeneratorHOTP
			c.SMS.Provider = SMSProviderSNS
		}},
		{name: "zero ttl", mutate: func(c *Config) { c.Auth.VerificationCodeTTL = 0 }, wantErr: "AUTH_VERIFICATION_CODE_TTL"},
		{name: "negative ttl", mutate: func(c *Config) { c.Auth.VerificationCodeTTL = -time.Second }, wantErr: "AUTH_VERIFICATION_CODE_TTL"},
		{name: "short code", mutate: func(c *Config) { c.Auth.VerificationCodeLength = 3 }, wantErr: "AUTH_VERIFICATION_CODE_LENGTH"},
		{name: "long code", mutate: func(c *Config) { c.Auth.VerificationCodeLength = 12 }, wantErr: "AUTH_VERIFICATION_CODE_LENGTH"},
		{name: "unknown policy", mutate: func(c *Config) { c.Auth.DeliveryFailurePolicy = "ignore" }, wantErr: "AUTH_DELIVERY_FAILURE_POLICY"},
		{name: "hotp with short code", mutate: func(c *Config) {
			c.Auth.CodeGenerator = CodeGeneratorHOTP
			c.Auth.VerificationCodeLength = 4
		}, wantErr: "hotp codes must be 6..8 digits"},
		{name: "unknown generator", mutate: func(c *Config) { c.Auth.CodeGenerator = "totp" }, wantErr: "AUTH_CODE_GENERATOR"},
		{name: "unknown provider", mutate: func(c *Config) { c.SMS.Provider = "twilio" }, wantErr: "SMS_PROVIDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.VerificationCodeTTL = 0
	cfg.Auth.DeliveryFailurePolicy = ""

	err := cfg.Validate()
	assert.ErrorContains(t, err, "AUTH_VERIFICATION_CODE_TTL")
	assert.ErrorContains(t, err, "AUTH_DELIVERY_FAILURE_POLICY")
}
