package service

// QRCodeService renders and reads vote receipt QR codes
type QRCodeService interface {
	// GenerateReceiptQR renders a PNG QR code for a receipt transaction id
	GenerateReceiptQR(transactionID string) ([]byte, error)

	// ParseReceiptQR extracts the transaction id from scanned QR payload text
	ParseReceiptQR(qrData string) (string, error)
}
