package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateVerificationCode deriva um código opaco e imprevisível de
// {userID, attemptID, timestamp de alta precisão, salt fixo} por sha256.
// Formato: CERT-<12 hex>-<6 dígitos do timestamp>.
func GenerateVerificationCode(userID, attemptID uuid.UUID, ts time.Time, salt string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%s", userID, attemptID, ts.UnixNano(), salt)))
	hexPart := strings.ToUpper(hex.EncodeToString(sum[:]))[:12]
	suffix := ts.UnixNano() % 1_000_000
	return fmt.Sprintf("CERT-%s-%06d", hexPart, suffix)
}
