// Package lcd shows two-line status messages on an HD44780 display.
//
// Example usage:
//
//	msgs := make(chan lcd.Message, 4)
//	handler := lcd.NewHandler(&device, msgs)
//	go handler.Run()
//
//	lcd.Send(msgs, "AP ready", "ESPDEMO")
package lcd

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Message represents a two-line LCD message.
type Message struct {
	Line1 []byte
	Line2 []byte
}

// Display is the subset of *hd44780i2c.Device the handler drives.
type Display interface {
	ClearDisplay()
	SetCursor(x, y uint8)
	Print(data []byte)
}

// Handler processes LCD messages from a channel.
type Handler struct {
	device   Display
	messages <-chan Message
	rows     int
	columns  int
}

// NewHandler creates a new 16x2 LCD message handler.
func NewHandler(device Display, messages <-chan Message) *Handler {
	return &Handler{
		device:   device,
		messages: messages,
		rows:     2,
		columns:  16,
	}
}

// Run processes messages until the channel is closed. Run should be called
// in a separate goroutine.
func (h *Handler) Run() {
	for msg := range h.messages {
		h.display(msg)
	}
}

func (h *Handler) display(msg Message) {
	h.device.ClearDisplay()
	h.device.SetCursor(0, 0)
	h.device.Print(h.truncate(msg.Line1))
	h.device.SetCursor(0, 1)
	h.device.Print(h.truncate(msg.Line2))
}

// truncate cuts line to the display width without allocating.
func (h *Handler) truncate(line []byte) []byte {
	if len(line) > h.columns {
		return line[:h.columns]
	}
	return line
}

// Send queues a message without blocking. It is safe to call from radio
// and timer callbacks: when ch is nil or full the message is dropped.
func Send(ch chan<- Message, line1, line2 string) bool {
	if ch == nil {
		return false
	}
	select {
	case ch <- Message{Line1: []byte(line1), Line2: []byte(line2)}:
		return true
	default:
		return false
	}
}

// Configure probes the common backpack addresses (0x27, then 0x3F) and
// returns a configured 16x2 device.
func Configure(bus drivers.I2C) (*hd44780i2c.Device, error) {
	for _, addr := range []uint8{0x27, 0x3F} {
		if !probe(bus, addr) {
			continue
		}
		dev := hd44780i2c.New(bus, addr)
		err := dev.Configure(hd44780i2c.Config{
			Width:  16,
			Height: 2,
		})
		if err != nil {
			return nil, errors.New("configure LCD:" + err.Error())
		}
		return &dev, nil
	}
	return nil, errors.New("LCD not found on addresses: 0x27, 0x3f")
}

// probe reports whether a device ACKs a one byte read at addr.
func probe(bus drivers.I2C, addr uint8) bool {
	var b [1]byte
	return bus.Tx(uint16(addr), nil, b[:]) == nil
}
