// FILE: hydrogen-config/decode.go
package config

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Decode is the single function for decoding a document subtree into a
// target structure. It is used for variable-length parts (lists and maps)
// that are not described by field tables. It reports whether path exists.
// Elements follow the same strict coercion as single fields.
func (d *Document) Decode(path string, target any, lookup EnvLookupFunc) (bool, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return false, fmt.Errorf("%w: decode target must be non-nil pointer, got %T", ErrInvalidField, target)
	}

	data, found := d.Lookup(path)
	if !found || data == nil {
		return false, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    "json",
		DecodeHook: getDecodeHook(lookup),
		ZeroFields: true,
	})
	if err != nil {
		return true, fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return true, fmt.Errorf("decode failed for path %q: %w", path, err)
	}

	return true, nil
}

// getDecodeHook returns the composite decode hook for collection values
func getDecodeHook(lookup EnvLookupFunc) mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		envRefHookFunc(lookup),
		stringToSingleSliceHookFunc(),
		strictIntHookFunc(),
	)
}

// envRefHookFunc substitutes ${env.NAME} strings. String targets receive the
// raw variable text; other targets receive the inferred value. Unset
// references are passed through untouched.
func envRefHookFunc(lookup EnvLookupFunc) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}

		str := data.(string)
		raw, _, status := lookupRaw(str, lookup)
		if status != EnvResolved {
			return data, nil
		}

		if t.Kind() == reflect.String {
			return raw, nil
		}
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String {
			return raw, nil
		}

		inferred := InferValue(raw)
		if inferred == nil {
			return nil, fmt.Errorf("environment variable for %s is empty", str)
		}
		return inferred, nil
	}
}

// stringToSingleSliceHookFunc lets a lone string stand for a one-element list,
// so "TxtRecords": "path=/api" and "TxtRecords": ["path=/api"] decode the same.
func stringToSingleSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		if t.Elem().Kind() != reflect.String {
			return data, nil
		}
		return []string{data.(string)}, nil
	}
}

// strictIntHookFunc only lets whole numbers into integer targets.
// mapstructure would otherwise truncate floats.
func strictIntHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return data, nil
		}
		if _, ok := asInt64(data); ok {
			return data, nil
		}
		if s, ok := data.(string); ok {
			if name, isRef := ParseEnvRef(s); isRef {
				return nil, fmt.Errorf("environment variable %s is not set", name)
			}
		}
		return nil, fmt.Errorf("element holds %s, expected %s", kindOf(data), KindInt)
	}
}
