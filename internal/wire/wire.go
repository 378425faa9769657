// Package wire frames codec payloads stored in an output-cache provider.
// The envelope lets the façade detect foreign or truncated bytes and drop
// the entry instead of surfacing garbage.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("braces: corrupt cache entry")
	magic4     = [...]byte{'B', 'R', 'C', 'E'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Encode frames a codec payload: magic(4) | ver(1) | plen(u32 be) | payload.
func Encode(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode validates the envelope and returns the codec payload.
func Decode(b []byte) ([]byte, error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}
	plen := binary.BigEndian.Uint32(b[5:hdr])
	if uint32(len(b)-hdr) != plen {
		return nil, ErrCorrupt
	}
	return b[hdr:], nil
}
