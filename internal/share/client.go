// Package share sends rendered quotes to clients over WhatsApp. It keeps
// its own device database next to the quote store; pairing state never
// mixes with quote data.
package share

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	wastore "go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"

	"github.com/maozinhaws/pintor-pro/internal/export"
	"github.com/maozinhaws/pintor-pro/internal/infra/config"
	"github.com/maozinhaws/pintor-pro/internal/model"
)

// Client wraps a whatsmeow client for sending quote messages.
type Client struct {
	wa  *whatsmeow.Client
	db  *sql.DB
	cfg config.ShareConfig
	log waLog.Logger
}

// NewClient opens (or creates) the device database under storePath and
// builds the WhatsApp client. It does not connect yet.
func NewClient(storePath string, cfg config.ShareConfig, log waLog.Logger) (*Client, error) {
	dbPath := filepath.Join(storePath, "whatsapp.db")
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open device database: %w", err)
	}

	container := sqlstore.NewWithDB(db, "sqlite3", log.Sub("whatsmeow"))
	if err := container.Upgrade(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to upgrade device schema: %w", err)
	}

	device, err := getDevice(container)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	wa := whatsmeow.NewClient(device, log.Sub("whatsmeow"))
	wa.EnableAutoReconnect = true
	wa.AutoTrustIdentity = true

	return &Client{
		wa:  wa,
		db:  db,
		cfg: cfg,
		log: log.Sub("Share"),
	}, nil
}

// getDevice returns the stored device or creates a fresh unpaired one.
func getDevice(container *sqlstore.Container) (*wastore.Device, error) {
	devices, err := container.GetAllDevices(context.Background())
	if err != nil {
		return nil, err
	}
	if len(devices) > 0 {
		return devices[0], nil
	}
	return container.NewDevice(), nil
}

// Paired reports whether the client has stored credentials.
func (c *Client) Paired() bool {
	return c.wa.Store.ID != nil
}

// Connect connects to WhatsApp, walking through QR pairing when the
// device was never paired.
func (c *Client) Connect(ctx context.Context) error {
	if c.Paired() {
		return c.wa.Connect()
	}

	c.log.Infof("Device not paired, starting QR pairing")
	qrChan, err := c.wa.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to get QR channel: %w", err)
	}
	if err := c.wa.Connect(); err != nil {
		return err
	}
	return NewQRHandler(c.log).HandleQRChannel(qrChan)
}

// Disconnect closes the WhatsApp connection.
func (c *Client) Disconnect() {
	c.wa.Disconnect()
}

// Close disconnects and closes the device database.
func (c *Client) Close() error {
	c.wa.Disconnect()
	return c.db.Close()
}

// SendOrcamento renders the quote and sends it to the quote's client.
func (c *Client) SendOrcamento(ctx context.Context, o *model.Orcamento, empresa *model.ConfigEmpresa) error {
	jid, err := JIDFromPhone(o.Cliente.Telefone, c.cfg.CountryCode)
	if err != nil {
		return fmt.Errorf("quote %d has no usable phone number: %w", o.ID, err)
	}

	texto := export.Mensagem(o, empresa)
	_, err = c.wa.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: proto.String(texto),
	})
	if err != nil {
		return fmt.Errorf("failed to send quote %d to %s: %w", o.ID, jid, err)
	}

	c.log.Infof("Sent quote %d to %s", o.ID, jid)
	return nil
}

// SendText sends an arbitrary text message to a phone number.
func (c *Client) SendText(ctx context.Context, phone, text string) error {
	jid, err := JIDFromPhone(phone, c.cfg.CountryCode)
	if err != nil {
		return err
	}
	_, err = c.wa.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: proto.String(text),
	})
	return err
}

// JID returns the paired device's own address, if any.
func (c *Client) JID() types.JID {
	if c.wa.Store.ID != nil {
		return *c.wa.Store.ID
	}
	return types.JID{}
}
