package qrcode

import (
	"encoding/json"
	"testing"

	"votegate/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestGenerateReceiptQR_IsPNG(t *testing.T) {
	svc := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "Q"}})

	png, err := svc.GenerateReceiptQR("VT-20251012140509-3F2A9C1E")
	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	_, err = svc.GenerateReceiptQR("")
	assert.Error(t, err)
}

func TestParseReceiptQR(t *testing.T) {
	svc := New(nil)
	valid, err := json.Marshal(ReceiptPayload{TransactionID: "VT-20251012140509-3F2A9C1E", Type: receiptType})
	require.NoError(t, err)
	wrongType, err := json.Marshal(ReceiptPayload{TransactionID: "VT-1-2", Type: "subscription"})
	require.NoError(t, err)
	wrongID, err := json.Marshal(ReceiptPayload{TransactionID: "42", Type: receiptType})
	require.NoError(t, err)

	id, err := svc.ParseReceiptQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, "VT-20251012140509-3F2A9C1E", id)

	_, err = svc.ParseReceiptQR("invalid json")
	assert.ErrorContains(t, err, "unmarshal receipt payload")

	_, err = svc.ParseReceiptQR(string(wrongType))
	assert.ErrorContains(t, err, "invalid QR code type")

	_, err = svc.ParseReceiptQR(string(wrongID))
	assert.ErrorContains(t, err, "invalid transaction id")
}
