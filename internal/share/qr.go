package share

import (
	"fmt"

	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	waLog "go.mau.fi/whatsmeow/util/log"
)

// QRHandler walks the pairing QR flow, rendering codes in the terminal.
type QRHandler struct {
	log waLog.Logger
}

// NewQRHandler creates a new QRHandler.
func NewQRHandler(log waLog.Logger) *QRHandler {
	return &QRHandler{log: log.Sub("QR")}
}

// HandleQRChannel consumes QR channel items until pairing succeeds or
// fails.
func (h *QRHandler) HandleQRChannel(qrChan <-chan whatsmeow.QRChannelItem) error {
	for item := range qrChan {
		switch item.Event {
		case "code":
			h.log.Infof("Scan the QR code below with WhatsApp (Linked Devices)")
			h.displayQR(item.Code)
		case "timeout":
			h.log.Warnf("QR code timed out, restart to get a new one")
			return fmt.Errorf("QR code timeout")
		case "success":
			h.log.Infof("Successfully paired")
			return nil
		case "error":
			h.log.Errorf("QR error: %v", item.Error)
			return item.Error
		}
	}
	return nil
}

// displayQR renders a QR code as terminal ASCII art.
func (h *QRHandler) displayQR(code string) {
	qr, err := qrcode.New(code, qrcode.Medium)
	if err != nil {
		h.log.Errorf("Failed to generate QR code: %v", err)
		fmt.Println("QR Code content:", code)
		return
	}

	fmt.Println()
	fmt.Println(qr.ToSmallString(false))
	fmt.Println()
}

// SaveQRToFile writes the QR code as a PNG, for flows where the terminal
// can't render it.
func (h *QRHandler) SaveQRToFile(code, path string) error {
	if err := qrcode.WriteFile(code, qrcode.Medium, 256, path); err != nil {
		return fmt.Errorf("failed to save QR code: %w", err)
	}
	h.log.Infof("QR code saved to %s", path)
	return nil
}
