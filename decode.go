package fluentjson

import (
	"bytes"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Decoder is a pending decode of data into a T. It is an immutable value:
// every With* method returns a modified copy and leaves the receiver as-is.
type Decoder[T any] struct {
	data []byte
	cfg  DecodeConfig
	base jsoniter.Config
	log  Logger
}

// FromJSON starts a decode chain over data with declared keys and deferred
// dates, the codec's own defaults. data is not copied and must not be
// modified until Decode returns.
func FromJSON[T any](data []byte) Decoder[T] {
	return Decoder[T]{
		data: data,
		base: defaultCodec,
		log:  NopLogger{},
	}
}

// FromString is FromJSON over the UTF-8 bytes of s.
func FromString[T any](s string) Decoder[T] {
	return FromJSON[T](TextToBytes(s))
}

func (d Decoder[T]) WithFieldNameStrategy(k KeyStrategy) Decoder[T] {
	d.cfg.Keys = k
	return d
}

func (d Decoder[T]) WithDateStrategy(s DateStrategy) Decoder[T] {
	d.cfg.Dates = s
	return d
}

// WithConfig replaces the whole decode configuration, e.g. with Preset.DecodeConfig().
func (d Decoder[T]) WithConfig(cfg DecodeConfig) Decoder[T] {
	d.cfg = cfg
	return d
}

// DisallowUnknownFields makes Decode fail on object keys that no field accepts.
func (d Decoder[T]) DisallowUnknownFields() Decoder[T] {
	d.cfg.DisallowUnknownFields = true
	return d
}

// WithCodec sets the jsoniter configuration that Decode starts from. Key and
// date strategies are layered on top of it at decode time. A base with
// DisallowUnknownFields set turns the option on in Config, where a later
// WithConfig can turn it off again.
func (d Decoder[T]) WithCodec(base jsoniter.Config) Decoder[T] {
	if base.DisallowUnknownFields {
		d.cfg.DisallowUnknownFields = true
		base.DisallowUnknownFields = false
	}
	d.base = base
	return d
}

func (d Decoder[T]) WithLogger(l Logger) Decoder[T] {
	d.log = loggerOrNop(l)
	return d
}

func (d Decoder[T]) Config() DecodeConfig { return d.cfg }

// Decode runs the configured codec over the pending bytes. On failure it
// returns the zero T and a *DecodeError; partial results are discarded.
func (d Decoder[T]) Decode() (T, error) {
	var v T
	api := freezeDecoder(d.base, d.cfg)
	log := loggerOrNop(d.log)

	fields := Fields{
		"type":  typeName[T](),
		"bytes": len(d.data),
		"keys":  d.cfg.Keys.String(),
		"dates": d.cfg.Dates.String(),
	}
	err := io.ErrUnexpectedEOF
	if len(bytes.TrimSpace(d.data)) > 0 {
		err = api.Unmarshal(d.data, &v)
	}
	if err != nil {
		var zero T
		fields["err"] = err
		log.Debug("json decode failed", fields)
		return zero, &DecodeError{Type: typeName[T](), Err: err}
	}
	log.Debug("json decoded", fields)
	return v, nil
}
