package fluentjson

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

const prettyIndent = 2

// defaultCodec mirrors jsoniter.ConfigCompatibleWithStandardLibrary minus HTML
// escaping, which is an output flag here.
var defaultCodec = jsoniter.Config{
	ValidateJsonRawMessage: true,
}

// freezeDecoder builds a single-use API for one Decode call. cfg decides
// DisallowUnknownFields; the base setting is ignored.
func freezeDecoder(base jsoniter.Config, cfg DecodeConfig) jsoniter.API {
	c := base
	c.DisallowUnknownFields = cfg.DisallowUnknownFields
	api := c.Froze()
	registerStrategies(api, cfg.Keys, cfg.Dates)
	return api
}

// freezeEncoder builds a single-use API for one Encode call. When keys are
// sorted, indentation is left to the sorting pass.
func freezeEncoder(base jsoniter.Config, cfg EncodeConfig) jsoniter.API {
	c := base
	c.EscapeHTML = cfg.Formatting.Has(EscapeHTML)
	c.SortMapKeys = cfg.Formatting.Has(SortedKeys)
	c.IndentionStep = 0
	if cfg.Formatting.Has(PrettyPrinted) && !cfg.Formatting.Has(SortedKeys) {
		c.IndentionStep = prettyIndent
	}
	api := c.Froze()
	registerStrategies(api, cfg.Keys, cfg.Dates)
	return api
}

// Extensions must be registered before the API encodes or decodes anything:
// jsoniter caches per-type codecs on first use.
func registerStrategies(api jsoniter.API, keys KeyStrategy, dates DateStrategy) {
	if keys == SnakeCaseKeys {
		api.RegisterExtension(&snakeCaseExtension{})
	}
	if ext := dates.extension(); ext != nil {
		api.RegisterExtension(ext)
	}
}

// sortKeys re-encodes compact JSON through a generic tree so that every
// object, struct-derived ones included, comes out with sorted keys.
// Numbers travel as json.Number and keep their exact text.
func sortKeys(base jsoniter.Config, data []byte, f OutputFormatting) ([]byte, error) {
	c := base
	c.UseNumber = true
	c.SortMapKeys = true
	c.EscapeHTML = f.Has(EscapeHTML)
	c.IndentionStep = 0
	if f.Has(PrettyPrinted) {
		c.IndentionStep = prettyIndent
	}
	api := c.Froze()

	var tree any
	if err := api.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return api.Marshal(tree)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
