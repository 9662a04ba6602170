// Package qrcode renders vote receipt QR codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"votegate/config"
	"votegate/internal/domain/service"
	"votegate/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	receiptType = "vote_receipt"

	defaultSize  = 256
	defaultLevel = "M"
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// ReceiptPayload is the JSON encoded into a receipt QR code
type ReceiptPayload struct {
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
}

// New builds the service from the qrcode config section
func New(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, defaultLevel)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{size: size, level: recoveryLevel(errorCorrectionLevel)}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateReceiptQR renders the receipt payload as a PNG
func (s *qrcodeService) GenerateReceiptQR(transactionID string) ([]byte, error) {
	if transactionID == "" {
		return nil, errors.New("transaction id is required")
	}

	payload, err := json.Marshal(ReceiptPayload{TransactionID: transactionID, Type: receiptType})
	if err != nil {
		return nil, errors.Wrap(err, "marshal receipt payload")
	}

	png, err := qrcode.Encode(string(payload), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode receipt QR")
	}

	return png, nil
}

// ParseReceiptQR reads the transaction id back out of scanned payload text
func (s *qrcodeService) ParseReceiptQR(qrData string) (string, error) {
	var payload ReceiptPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return "", errors.Wrap(err, "unmarshal receipt payload")
	}
	if payload.Type != receiptType {
		return "", errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if !strings.HasPrefix(payload.TransactionID, "VT-") {
		return "", errors.Errorf("invalid transaction id: %s", payload.TransactionID)
	}

	return payload.TransactionID, nil
}
