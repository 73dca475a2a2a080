package fluentjson

import (
	jsoniter "github.com/json-iterator/go"
)

// Encoder is a pending encode of a T. Like Decoder it is an immutable value;
// With* methods return modified copies.
type Encoder[T any] struct {
	value T
	cfg   EncodeConfig
	base  jsoniter.Config
	log   Logger
}

// ToJSON starts an encode chain for v with declared keys, deferred dates and
// compact output.
func ToJSON[T any](v T) Encoder[T] {
	return Encoder[T]{
		value: v,
		base:  defaultCodec,
		log:   NopLogger{},
	}
}

func (e Encoder[T]) WithFieldNameStrategy(k KeyStrategy) Encoder[T] {
	e.cfg.Keys = k
	return e
}

func (e Encoder[T]) WithDateStrategy(s DateStrategy) Encoder[T] {
	e.cfg.Dates = s
	return e
}

// WithOutputFormatting replaces the formatting flags; pass 0 for compact output.
func (e Encoder[T]) WithOutputFormatting(f OutputFormatting) Encoder[T] {
	e.cfg.Formatting = f
	return e
}

func (e Encoder[T]) WithConfig(cfg EncodeConfig) Encoder[T] {
	e.cfg = cfg
	return e
}

// WithCodec sets the jsoniter configuration that Encode starts from.
// EscapeHTML, SortMapKeys and IndentionStep are always taken from the
// output formatting flags.
func (e Encoder[T]) WithCodec(base jsoniter.Config) Encoder[T] {
	e.base = base
	return e
}

func (e Encoder[T]) WithLogger(l Logger) Encoder[T] {
	e.log = loggerOrNop(l)
	return e
}

func (e Encoder[T]) Config() EncodeConfig { return e.cfg }

// Encode runs the configured codec over the pending value. On failure it
// returns nil and an *EncodeError.
func (e Encoder[T]) Encode() ([]byte, error) {
	api := freezeEncoder(e.base, e.cfg)
	log := loggerOrNop(e.log)

	fields := Fields{
		"type":   typeName[T](),
		"keys":   e.cfg.Keys.String(),
		"dates":  e.cfg.Dates.String(),
		"format": e.cfg.Formatting.String(),
	}
	out, err := api.Marshal(e.value)
	if err == nil && e.cfg.Formatting.Has(SortedKeys) {
		out, err = sortKeys(e.base, out, e.cfg.Formatting)
	}
	if err != nil {
		fields["err"] = err
		log.Debug("json encode failed", fields)
		return nil, &EncodeError{Type: typeName[T](), Err: err}
	}
	fields["bytes"] = len(out)
	log.Debug("json encoded", fields)
	return out, nil
}

// EncodeString is Encode followed by a UTF-8 conversion of the result.
func (e Encoder[T]) EncodeString() (string, error) {
	b, err := e.Encode()
	if err != nil {
		return "", err
	}
	return BytesToText(b, UTF8)
}
