package fluentjson

// Decode decodes data into a T using the options bundled by p.
func Decode[T any](data []byte, p Preset) (T, error) {
	return FromJSON[T](data).WithConfig(p.DecodeConfig()).Decode()
}

// DecodeString decodes the UTF-8 text s into a T using the options bundled by p.
func DecodeString[T any](s string, p Preset) (T, error) {
	return FromString[T](s).WithConfig(p.DecodeConfig()).Decode()
}

// Encode encodes v using the options bundled by p. Output is compact and
// unsorted; use ToJSON for other formatting.
func Encode[T any](v T, p Preset) ([]byte, error) {
	return ToJSON(v).WithConfig(p.EncodeConfig()).Encode()
}

// EncodeString is Encode returning UTF-8 text.
func EncodeString[T any](v T, p Preset) (string, error) {
	return ToJSON(v).WithConfig(p.EncodeConfig()).EncodeString()
}
