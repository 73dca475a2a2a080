package fluentjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	level string
	msg   string
	f     Fields
}

type recordingLogger struct {
	entries []entry
}

func (r *recordingLogger) add(level, msg string, f Fields) {
	r.entries = append(r.entries, entry{level: level, msg: msg, f: f})
}

func (r *recordingLogger) Debug(msg string, f Fields) { r.add("debug", msg, f) }
func (r *recordingLogger) Info(msg string, f Fields)  { r.add("info", msg, f) }
func (r *recordingLogger) Warn(msg string, f Fields)  { r.add("warn", msg, f) }
func (r *recordingLogger) Error(msg string, f Fields) { r.add("error", msg, f) }

func TestDecodeLogs(t *testing.T) {
	rec := &recordingLogger{}
	_, err := FromString[catMeme](nyanCatJSON).
		WithConfig(Server.DecodeConfig()).
		WithLogger(rec).
		Decode()
	require.NoError(t, err)

	require.Len(t, rec.entries, 1)
	e := rec.entries[0]
	assert.Equal(t, "debug", e.level)
	assert.Equal(t, "json decoded", e.msg)
	assert.Equal(t, "fluentjson.catMeme", e.f["type"])
	assert.Equal(t, len(nyanCatJSON), e.f["bytes"])
	assert.Equal(t, "snake_case", e.f["keys"])
	assert.Equal(t, "iso8601", e.f["dates"])
	assert.NotContains(t, e.f, "err")
}

func TestDecodeFailureLogs(t *testing.T) {
	rec := &recordingLogger{}
	_, err := FromString[catMeme](grumpyCatJSON).WithLogger(rec).Decode()
	require.Error(t, err)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, "json decode failed", rec.entries[0].msg)
	assert.NotNil(t, rec.entries[0].f["err"])
}

func TestEncodeLogs(t *testing.T) {
	rec := &recordingLogger{}
	out, err := ToJSON(nyanCat).
		WithOutputFormatting(PrettyPrinted | SortedKeys).
		WithLogger(rec).
		Encode()
	require.NoError(t, err)

	require.Len(t, rec.entries, 1)
	e := rec.entries[0]
	assert.Equal(t, "json encoded", e.msg)
	assert.Equal(t, len(out), e.f["bytes"])
	assert.Equal(t, "pretty|sorted", e.f["format"])
	assert.Equal(t, "deferred", e.f["dates"])
}

func TestNilLoggerIsNop(t *testing.T) {
	_, err := ToJSON(nyanCat).WithLogger(nil).Encode()
	require.NoError(t, err)
	_, err = FromString[catMeme](nyanCatJSON).WithLogger(nil).Decode()
	require.NoError(t, err)
}

func TestStrategyStrings(t *testing.T) {
	assert.Equal(t, "default", UseDefaultKeys.String())
	assert.Equal(t, "formatted(2006-01-02)", FormattedDates("2006-01-02").String())
	assert.Equal(t, "milliseconds_since_1970", MillisecondsSince1970.String())
	assert.Equal(t, "compact", OutputFormatting(0).String())
	assert.Equal(t, "sorted|escape_html", (SortedKeys | EscapeHTML).String())
	assert.Equal(t, "server", Server.String())
	assert.Equal(t, "identity", Identity.String())
	assert.Equal(t, "utf-16le", UTF16LittleEndian.String())
}
