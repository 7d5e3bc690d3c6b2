package toml

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses TOML data and stores the result in the struct or map pointed to by v
// Keys absent from the document leave the destination field untouched
func Unmarshal(data []byte, v any) error {
	parsed, err := NewParser(data).Parse()
	if err != nil {
		return err
	}
	return Decode(parsed, v)
}

// Decode maps a parsed tree onto v using `toml` tags, falling back to field names
func Decode(data map[string]any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	return decodeValue(data, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	switch val.Kind() {
	case reflect.Ptr:
		elem := reflect.New(val.Type().Elem())
		if err := decodeValue(data, elem.Elem()); err != nil {
			return err
		}
		val.Set(elem)

	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		return decodeStruct(m, val)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("only map[string]T is supported")
		}
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected table, got %T", data)
		}
		if val.IsNil() {
			val.Set(reflect.MakeMap(val.Type()))
		}
		for k, item := range m {
			elem := reflect.New(val.Type().Elem()).Elem()
			if err := decodeValue(item, elem); err != nil {
				return fmt.Errorf("key %s: %w", k, err)
			}
			val.SetMapIndex(reflect.ValueOf(k).Convert(val.Type().Key()), elem)
		}

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := data.(int64)
		if !ok {
			return fmt.Errorf("cannot convert %T to integer", data)
		}
		if val.OverflowInt(i) {
			return fmt.Errorf("integer %d overflows %s", i, val.Type())
		}
		val.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := data.(int64)
		if !ok || i < 0 || val.OverflowUint(uint64(i)) {
			return fmt.Errorf("cannot convert %v to %s", data, val.Type())
		}
		val.SetUint(uint64(i))

	case reflect.Float32, reflect.Float64:
		switch f := data.(type) {
		case float64:
			val.SetFloat(f)
		case int64:
			val.SetFloat(float64(f))
		default:
			return fmt.Errorf("cannot convert %T to float", data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("cannot convert %T to string", data)
		}
		val.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("cannot convert %T to bool", data)
		}
		val.SetBool(b)

	default:
		return fmt.Errorf("unsupported destination %s", val.Type())
	}
	return nil
}

func decodeStruct(data map[string]any, val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		key, _ := fieldKey(field)
		if key == "-" {
			continue
		}
		item, ok := data[key]
		if !ok {
			continue
		}
		if err := decodeValue(item, val.Field(i)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// fieldKey returns the TOML key for a struct field and whether omitempty is set
func fieldKey(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("toml")
	if tag == "" {
		return field.Name, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, opts == "omitempty"
}
