package domain

import "time"

const LoginCodeKeyPrefix = "login:code:"

// VerificationCode is an outstanding login code for a phone.
type VerificationCode struct {
	Phone    string
	Code     string
	IssuedAt time.Time
	TTL      time.Duration
}

func LoginCodeKey(phone string) string {
	return LoginCodeKeyPrefix + phone
}

func (v VerificationCode) ExpiresAt() time.Time {
	return v.IssuedAt.Add(v.TTL)
}
