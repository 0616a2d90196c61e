package entity

import (
	"time"
)

type OTPPurpose string

const (
	OTPPurposeEmailVerification OTPPurpose = "email_verification"
	OTPPurposePasswordReset     OTPPurpose = "password_reset"
)

// OTP is a single-use, time-limited code. The table keeps one row per
// (email, purpose) pair; issuing a new code overwrites the previous one,
// so at most one code is ever authoritative for a pair.
type OTP struct {
	BaseSimple
	Email     string     `db:"email"`
	Code      string     `db:"code"`
	Purpose   OTPPurpose `db:"purpose"`
	ExpiresAt time.Time  `db:"expires_at"`
	Consumed  bool       `db:"consumed"`
}
