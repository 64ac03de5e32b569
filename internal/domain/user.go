package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleNormal = "normal"

	nickNamePrefix = "User_"
	nickNameDigits = 4
)

type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Phone     string    `db:"phone" json:"phone"`
	NickName  string    `db:"nick_name" json:"nickName"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewPhoneUser builds the record provisioned on the first successful login of phone.
func NewPhoneUser(id uuid.UUID, phone string) *User {
	return &User{
		ID:       id,
		Phone:    phone,
		NickName: DefaultNickName(phone),
		Role:     RoleNormal,
	}
}

// DefaultNickName is "User_" followed by the last four characters of phone.
func DefaultNickName(phone string) string {
	suffix := phone
	if len(phone) > nickNameDigits {
		suffix = phone[len(phone)-nickNameDigits:]
	}
	return nickNamePrefix + suffix
}
