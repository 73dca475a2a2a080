package codec

import "github.com/unkn0wn-root/fluentjson"

// Bytes is an identity codec for payloads that are already encoded JSON.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts between Go strings and UTF-8 bytes. Decode rejects
// invalid UTF-8 with an error matching fluentjson.ErrInvalidText.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return fluentjson.TextToBytes(s), nil }
func (String) Decode(b []byte) (string, error) { return fluentjson.BytesToText(b, fluentjson.UTF8) }
