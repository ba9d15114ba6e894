package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"go.uber.org/zap"

	"pocketbank/pkg/logging"
)

var ErrInvalidSignature = errors.New("invalid signature")

// Signer produces hex-encoded HMAC-SHA256 signatures.
type Signer struct {
	secretKey []byte
	logger    *logging.Logger
}

func NewSigner(secretKey string, logger *logging.Logger) *Signer {
	return &Signer{
		secretKey: []byte(secretKey),
		logger:    logging.OrNop(logger),
	}
}

func (s *Signer) Sign(data []byte) string {
	mac := hmac.New(sha256.New, s.secretKey)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(data []byte, signature string) error {
	expected := s.Sign(data)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		s.logger.Warn("Signature verification failed", zap.String("received", signature))
		return ErrInvalidSignature
	}
	return nil
}
