package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== QR CODE ====================

// RandomHexSuffix returns n upper-case hex characters taken from a fresh v4 UUID.
func RandomHexSuffix(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n <= 0 || n > len(hex) {
		n = len(hex)
	}
	return strings.ToUpper(hex[:n])
}

// GenerateQRCode builds a ticket token: PREFIX-<bookingID>-XXXXXXXX
func GenerateQRCode(prefix string, bookingID uuid.UUID) string {
	if prefix == "" {
		prefix = "PH"
	}
	return fmt.Sprintf("%s-%s-%s", prefix, bookingID.String(), RandomHexSuffix(8))
}
