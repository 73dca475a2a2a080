package fluentjson

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// TextEncoding names the byte encoding BytesToText reads. The zero value is UTF8.
type TextEncoding uint8

const (
	UTF8 TextEncoding = iota
	ASCII
	ISOLatin1
	// UTF16 honours a leading byte order mark and defaults to big-endian.
	UTF16
	UTF16LittleEndian
	UTF16BigEndian
)

func (e TextEncoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case ASCII:
		return "ascii"
	case ISOLatin1:
		return "iso-8859-1"
	case UTF16:
		return "utf-16"
	case UTF16LittleEndian:
		return "utf-16le"
	case UTF16BigEndian:
		return "utf-16be"
	default:
		return "unknown"
	}
}

// TextToBytes returns the UTF-8 bytes of s. It never fails.
func TextToBytes(s string) []byte {
	return []byte(s)
}

// BytesToText interprets b under enc. Bytes that are not valid in enc yield an
// error matching ErrInvalidText.
func BytesToText(b []byte, enc TextEncoding) (string, error) {
	switch enc {
	case UTF8:
		if off := invalidUTF8(b); off >= 0 {
			return "", invalidText(enc, off)
		}
		return string(b), nil
	case ASCII:
		for i, c := range b {
			if c >= utf8.RuneSelf {
				return "", invalidText(enc, i)
			}
		}
		return string(b), nil
	case ISOLatin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrInvalidText, enc, err)
		}
		return string(out), nil
	case UTF16, UTF16LittleEndian, UTF16BigEndian:
		return utf16Text(b, enc)
	default:
		return "", fmt.Errorf("%w: unsupported encoding %d", ErrInvalidText, enc)
	}
}

func invalidText(enc TextEncoding, off int) error {
	return fmt.Errorf("%w: %s at byte %d", ErrInvalidText, enc, off)
}

// invalidUTF8 returns the offset of the first invalid sequence, or -1.
func invalidUTF8(b []byte) int {
	for off := 0; off < len(b); {
		if b[off] < utf8.RuneSelf {
			off++
			continue
		}
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size == 1 {
			return off
		}
		off += size
	}
	return -1
}

var (
	bomBE = []byte{0xFE, 0xFF}
	bomLE = []byte{0xFF, 0xFE}
)

// utf16Text decodes with a fixed byte order and re-encodes the result; any
// difference from the input means x/text substituted U+FFFD for an odd
// trailing byte or an unpaired surrogate.
func utf16Text(b []byte, enc TextEncoding) (string, error) {
	order := unicode.BigEndian
	switch enc {
	case UTF16LittleEndian:
		order = unicode.LittleEndian
	case UTF16:
		switch {
		case bytes.HasPrefix(b, bomBE):
			b = b[2:]
		case bytes.HasPrefix(b, bomLE):
			order = unicode.LittleEndian
			b = b[2:]
		}
	}
	if len(b)%2 != 0 {
		return "", invalidText(enc, len(b)-1)
	}

	codec := unicode.UTF16(order, unicode.IgnoreBOM)
	out, err := codec.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidText, enc, err)
	}
	back, err := codec.NewEncoder().Bytes(out)
	if err != nil || !bytes.Equal(back, b) {
		return "", fmt.Errorf("%w: %s: unpaired surrogate", ErrInvalidText, enc)
	}
	return string(out), nil
}
