package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== OTP ====================

// GenerateOTP creates a numeric one-time code of the given length.
// Codes are drawn from crypto/rand; replay and lifetime limits are
// enforced by the store, not here.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	otp := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate OTP digit: %w", err)
		}
		otp[i] = byte('0' + n.Int64())
	}

	return string(otp), nil
}

// ==================== PAYMENT REFERENCE ====================

// GeneratePaymentReference creates a unique payment reference with timestamp.
// Format: PAY-YYYYMMDD-HHMMSS-RANDOM
func GeneratePaymentReference() string {
	now := time.Now()

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	random := int64(0)
	if err == nil {
		random = n.Int64()
	}

	return fmt.Sprintf("PAY-%s-%s-%04d", now.Format("20060102"), now.Format("150405"), random)
}

// ==================== MISC ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
