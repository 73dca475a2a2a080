package fluentjson

import (
	"strings"
)

// KeyStrategy controls how struct field names map to JSON object keys.
type KeyStrategy uint8

const (
	// UseDefaultKeys keeps the declared name (json tag or Go field name).
	UseDefaultKeys KeyStrategy = iota
	// SnakeCaseKeys writes snake_case keys and accepts them when decoding.
	SnakeCaseKeys
)

func (k KeyStrategy) String() string {
	switch k {
	case UseDefaultKeys:
		return "default"
	case SnakeCaseKeys:
		return "snake_case"
	default:
		return "unknown"
	}
}

type dateKind uint8

const (
	dateDeferred dateKind = iota
	dateISO8601
	dateSeconds
	dateMilliseconds
	dateFormatted
)

// DateStrategy controls how time.Time values are represented in JSON.
// The zero value is DeferredDates. DateStrategy values are comparable.
type DateStrategy struct {
	kind   dateKind
	layout string
}

var (
	// DeferredDates leaves time.Time to its own MarshalJSON/UnmarshalJSON (RFC 3339 with nanoseconds).
	DeferredDates = DateStrategy{kind: dateDeferred}
	// ISO8601Dates reads RFC 3339 text and writes UTC with second precision, e.g. "2011-04-05T12:00:01Z".
	ISO8601Dates = DateStrategy{kind: dateISO8601}
	// SecondsSince1970 uses a JSON number of seconds since the Unix epoch.
	SecondsSince1970 = DateStrategy{kind: dateSeconds}
	// MillisecondsSince1970 uses a JSON number of milliseconds since the Unix epoch.
	MillisecondsSince1970 = DateStrategy{kind: dateMilliseconds}
)

// FormattedDates uses text rendered and parsed with a Go time layout.
func FormattedDates(layout string) DateStrategy {
	return DateStrategy{kind: dateFormatted, layout: layout}
}

func (d DateStrategy) String() string {
	switch d.kind {
	case dateDeferred:
		return "deferred"
	case dateISO8601:
		return "iso8601"
	case dateSeconds:
		return "seconds_since_1970"
	case dateMilliseconds:
		return "milliseconds_since_1970"
	case dateFormatted:
		return "formatted(" + d.layout + ")"
	default:
		return "unknown"
	}
}

// OutputFormatting is a set of encoder output flags. The zero value is
// compact, unsorted output without HTML escaping.
type OutputFormatting uint8

const (
	// PrettyPrinted indents nested values by two spaces.
	PrettyPrinted OutputFormatting = 1 << iota
	// SortedKeys orders the keys of every object lexicographically, struct fields included.
	SortedKeys
	// EscapeHTML escapes <, > and & inside strings.
	EscapeHTML
)

func (f OutputFormatting) Has(flag OutputFormatting) bool { return f&flag == flag }

func (f OutputFormatting) String() string {
	if f == 0 {
		return "compact"
	}
	var parts []string
	if f.Has(PrettyPrinted) {
		parts = append(parts, "pretty")
	}
	if f.Has(SortedKeys) {
		parts = append(parts, "sorted")
	}
	if f.Has(EscapeHTML) {
		parts = append(parts, "escape_html")
	}
	return strings.Join(parts, "|")
}

// DecodeConfig is the option set applied by Decoder.Decode.
type DecodeConfig struct {
	Keys  KeyStrategy
	Dates DateStrategy
	// DisallowUnknownFields fails decoding when the input has keys no field accepts.
	DisallowUnknownFields bool
}

// EncodeConfig is the option set applied by Encoder.Encode.
type EncodeConfig struct {
	Keys       KeyStrategy
	Dates      DateStrategy
	Formatting OutputFormatting
}

// Preset bundles a key strategy and a date strategy. The zero value is Server.
type Preset uint8

const (
	// Server: snake_case keys and RFC 3339 dates, compact output.
	Server Preset = iota
	// Identity: declared keys and the codec's own date handling, compact output.
	Identity
)

func (p Preset) String() string {
	switch p {
	case Server:
		return "server"
	case Identity:
		return "identity"
	default:
		return "unknown"
	}
}

// DecodeConfig returns the decode options bundled by p. Unknown presets
// resolve to Identity.
func (p Preset) DecodeConfig() DecodeConfig {
	if p == Server {
		return DecodeConfig{Keys: SnakeCaseKeys, Dates: ISO8601Dates}
	}
	return DecodeConfig{Keys: UseDefaultKeys, Dates: DeferredDates}
}

// EncodeConfig returns the encode options bundled by p. Unknown presets
// resolve to Identity.
func (p Preset) EncodeConfig() EncodeConfig {
	if p == Server {
		return EncodeConfig{Keys: SnakeCaseKeys, Dates: ISO8601Dates}
	}
	return EncodeConfig{Keys: UseDefaultKeys, Dates: DeferredDates}
}
