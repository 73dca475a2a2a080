// Package fluentjson is a chainable layer over json-iterator for moving between
// JSON text, []byte and typed values. Options are set through value-type builders
// instead of a shared, mutable codec configuration.
//
// Components:
//   - Decoder[T]: pending []byte + DecodeConfig, finished by Decode().
//   - Encoder[T]: pending T + EncodeConfig, finished by Encode() / EncodeString().
//   - Preset: Server (snake_case keys, RFC 3339 dates) or Identity (no translation).
//
// Every With* call returns a copy; the receiver never changes. The underlying
// jsoniter API is frozen, configured and used inside the terminal call only.
//
// Presets:
//
//	meme, err := fluentjson.DecodeString[CatMeme](`{"first_posted":"2011-04-05T12:00:01Z"}`, fluentjson.Server)
//	out, err := fluentjson.EncodeString(meme, fluentjson.Server)
//
// Full control:
//
//	meme, err := fluentjson.FromString[CatMeme](raw).
//	    WithFieldNameStrategy(fluentjson.SnakeCaseKeys).
//	    WithDateStrategy(fluentjson.SecondsSince1970).
//	    Decode()
//
//	b, err := fluentjson.ToJSON(meme).
//	    WithOutputFormatting(fluentjson.PrettyPrinted | fluentjson.SortedKeys).
//	    Encode()
package fluentjson
