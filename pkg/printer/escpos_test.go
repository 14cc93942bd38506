package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_StartsInitialized(t *testing.T) {
	doc := NewDocument(32)

	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
	assert.Equal(t, 32, doc.Width())
}

func TestNewDocument_DefaultWidth(t *testing.T) {
	doc := NewDocument(0)
	assert.Equal(t, 32, doc.Width())
}

func TestDocument_Commands(t *testing.T) {
	doc := NewDocument(32).
		SetAlign(AlignCenter).
		SetMode(ModeBold).
		Text("HELLO").
		SetMode(ModeNormal).
		Cut()

	want := bytes.Join([][]byte{
		{ESC, '@'},
		{ESC, 'a', 1},
		{ESC, '!', 0x08},
		[]byte("HELLO"), {LF},
		{ESC, '!', 0x00},
		{GS, 'V', 0x01},
	}, nil)
	assert.Equal(t, want, doc.Bytes())
}

func TestDocument_Separator(t *testing.T) {
	doc := NewDocument(8)
	doc.Reset().Separator('-')

	assert.Equal(t, append([]byte{ESC, '@'}, []byte("--------\n")...), doc.Bytes())
}

func TestDocument_KeyValue(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset().KeyValue("Total:", "118.00")

	lines := bytes.Split(doc.Bytes()[2:], []byte{LF})
	require.NotEmpty(t, lines)
	line := string(lines[0])
	assert.Len(t, line, 32)
	assert.Equal(t, "Total:", line[:6])
	assert.Equal(t, "118.00", line[26:])
}

func TestDocument_KeyValue_OverflowKeepsOneSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.Reset().KeyValue("A very long key", "9999.99")

	assert.Contains(t, string(doc.Bytes()), "A very long key 9999.99")
}

func TestDocument_FeedLines(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset().FeedLines(3)

	assert.Equal(t, []byte{ESC, '@', LF, LF, LF}, doc.Bytes())
}
