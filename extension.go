package fluentjson

import (
	"fmt"
	"io"
	"math"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/unkn0wn-root/fluentjson/internal/naming"
)

var (
	timeType    = reflect2.TypeOf(time.Time{})
	ptrTimeType = reflect2.TypeOf((*time.Time)(nil))
)

// snakeCaseExtension rewrites struct bindings so fields are written under their
// snake_case key and read from either the snake_case or the declared key.
type snakeCaseExtension struct {
	jsoniter.DummyExtension
}

func (e *snakeCaseExtension) UpdateStructDescriptor(sd *jsoniter.StructDescriptor) {
	for _, binding := range sd.Fields {
		// unexported or `json:"-"`
		if len(binding.ToNames) == 0 {
			continue
		}
		declared := binding.ToNames[0]
		snake := naming.SnakeCase(declared)
		binding.ToNames = []string{snake}
		if snake == declared {
			binding.FromNames = []string{declared}
		} else {
			binding.FromNames = []string{snake, declared}
		}
	}
}

// dateExtension installs a date codec for time.Time and *time.Time.
type dateExtension struct {
	jsoniter.DummyExtension
	codec dateCodec
}

func (e *dateExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	switch typ {
	case timeType:
		return e.codec
	case ptrTimeType:
		return ptrDateCodec{e.codec}
	}
	return nil
}

func (e *dateExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	switch typ {
	case timeType:
		return e.codec
	case ptrTimeType:
		return ptrDateCodec{e.codec}
	}
	return nil
}

type dateCodec interface {
	jsoniter.ValDecoder
	jsoniter.ValEncoder
}

// extension returns nil for DeferredDates.
func (d DateStrategy) extension() jsoniter.Extension {
	var c dateCodec
	switch d.kind {
	case dateISO8601:
		c = layoutDateCodec{layout: time.RFC3339, utc: true, name: "ISO 8601"}
	case dateFormatted:
		c = layoutDateCodec{layout: d.layout, name: fmt.Sprintf("layout %q", d.layout)}
	case dateSeconds:
		c = epochDateCodec{unit: time.Second, name: "seconds since 1970"}
	case dateMilliseconds:
		c = epochDateCodec{unit: time.Millisecond, name: "milliseconds since 1970"}
	default:
		return nil
	}
	return &dateExtension{codec: c}
}

// layoutDateCodec reads and writes dates as JSON strings.
type layoutDateCodec struct {
	layout string
	utc    bool
	name   string
}

func (c layoutDateCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		return
	}
	if iter.WhatIsNext() != jsoniter.StringValue {
		iter.ReportError("decode date", "expected "+c.name+" string")
		return
	}
	s := iter.ReadString()
	if failed(iter) {
		return
	}
	t, err := time.Parse(c.layout, s)
	if err != nil {
		iter.ReportError("decode date", fmt.Sprintf("%q is not a valid %s date: %v", s, c.name, err))
		return
	}
	*((*time.Time)(ptr)) = t
}

// IsEmpty reports false; encoding/json never omits struct values.
func (layoutDateCodec) IsEmpty(unsafe.Pointer) bool { return false }

func (c layoutDateCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *((*time.Time)(ptr))
	if c.utc {
		t = t.UTC()
	}
	stream.WriteString(t.Format(c.layout))
}

// epochDateCodec reads and writes dates as JSON numbers of unit since the Unix epoch.
type epochDateCodec struct {
	unit time.Duration
	name string
}

func (c epochDateCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		return
	}
	if iter.WhatIsNext() != jsoniter.NumberValue {
		iter.ReportError("decode date", "expected number of "+c.name)
		return
	}
	f := iter.ReadFloat64()
	if failed(iter) {
		return
	}
	perSec := float64(time.Second / c.unit)
	secs := math.Floor(f / perSec)
	if math.IsNaN(secs) || secs < math.MinInt64 || secs >= math.MaxInt64 {
		iter.ReportError("decode date", fmt.Sprintf("%v %s is out of range", f, c.name))
		return
	}
	nanos := math.Round((f - secs*perSec) * float64(c.unit))
	*((*time.Time)(ptr)) = time.Unix(int64(secs), int64(nanos)).UTC()
}

func (epochDateCodec) IsEmpty(unsafe.Pointer) bool { return false }

func (c epochDateCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *((*time.Time)(ptr))
	whole := t.Unix()*int64(time.Second/c.unit) + int64(t.Nanosecond())/int64(c.unit)
	rem := int64(t.Nanosecond()) % int64(c.unit)
	if rem == 0 {
		stream.WriteInt64(whole)
		return
	}
	stream.WriteFloat64(float64(whole) + float64(rem)/float64(c.unit))
}

// ptrDateCodec adapts a dateCodec to *time.Time; JSON null maps to nil.
type ptrDateCodec struct {
	elem dateCodec
}

func (c ptrDateCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	pp := (**time.Time)(ptr)
	if iter.ReadNil() {
		*pp = nil
		return
	}
	t := new(time.Time)
	c.elem.Decode(unsafe.Pointer(t), iter)
	if failed(iter) {
		return
	}
	*pp = t
}

func (c ptrDateCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return *((**time.Time)(ptr)) == nil
}

func (c ptrDateCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *((**time.Time)(ptr))
	if t == nil {
		stream.WriteNil()
		return
	}
	c.elem.Encode(unsafe.Pointer(t), stream)
}

// failed reports a decode error. The iterator sets io.EOF when a number ends
// the input; that is not a failure.
func failed(iter *jsoniter.Iterator) bool {
	return iter.Error != nil && iter.Error != io.EOF
}
