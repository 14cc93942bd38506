package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment (ESC a n)
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Print modes (ESC ! n)
const (
	ModeNormal       = 0x00
	ModeBold         = 0x08
	ModeDoubleHeight = 0x10
	ModeDoubleWidth  = 0x20
	ModeUnderline    = 0x80
)

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm paper)
}

// NewDocument creates a new ESC/POS document with the given character width.
// Common widths: 32 for 58mm paper, 48 for 80mm paper.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width returns the configured character width.
func (d *Document) Width() int {
	return d.width
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetMode sets the print mode byte. Use ModeNormal, ModeBold,
// ModeDoubleHeight, ModeDoubleWidth, or a combination ORed together.
func (d *Document) SetMode(mode byte) *Document {
	d.buf.Write([]byte{ESC, '!', mode})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	d.buf.WriteString(fmt.Sprintf(format, args...))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width separator line (e.g. "--------------------------------").
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Example: "Subtotal:                 100.00"
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(value)
	d.buf.WriteByte(LF)
	return d
}

// Cut sends the paper cut command (GS V 1, partial cut).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset clears the buffer and reinitializes the document.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}
