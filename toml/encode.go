package toml

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Marshal returns the TOML encoding of a struct or map[string]T
//   - Scalars of a table are written before its sub-tables
//   - Map keys are sorted; struct fields keep declaration order
//   - Nil pointers and `omitempty` zero values are skipped
func Marshal(v any) ([]byte, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("marshal: nil pointer")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct && val.Kind() != reflect.Map {
		return nil, fmt.Errorf("marshal: root must be struct or map, got %v", val.Kind())
	}

	var buf bytes.Buffer
	if err := encodeTable(&buf, val, ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type entry struct {
	key string
	val reflect.Value
}

func encodeTable(buf *bytes.Buffer, val reflect.Value, prefix string) error {
	entries, err := tableEntries(val)
	if err != nil {
		return err
	}

	var tables []entry
	for _, e := range entries {
		if isTable(e.val) {
			tables = append(tables, e)
			continue
		}
		buf.WriteString(quoteKey(e.key))
		buf.WriteString(" = ")
		if err := encodeScalar(buf, e.val); err != nil {
			return fmt.Errorf("key %q: %w", e.key, err)
		}
		buf.WriteByte('\n')
	}

	for _, e := range tables {
		name := quoteKey(e.key)
		if prefix != "" {
			name = prefix + "." + name
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString("[" + name + "]\n")
		if err := encodeTable(buf, indirect(e.val), name); err != nil {
			return err
		}
	}
	return nil
}

func tableEntries(val reflect.Value) ([]entry, error) {
	var entries []entry
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			key, omitEmpty := fieldKey(field)
			fv := val.Field(i)
			if key == "-" || (fv.Kind() == reflect.Ptr && fv.IsNil()) || (omitEmpty && fv.IsZero()) {
				continue
			}
			entries = append(entries, entry{key: key, val: fv})
		}
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("marshal: only map[string]T is supported")
		}
		keys := val.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			mv := val.MapIndex(k)
			if mv.Kind() == reflect.Interface {
				if mv.IsNil() {
					continue
				}
				mv = mv.Elem()
			}
			entries = append(entries, entry{key: k.String(), val: mv})
		}
	}
	return entries, nil
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

func isTable(v reflect.Value) bool {
	k := indirect(v).Kind()
	return k == reflect.Struct || k == reflect.Map
}

func encodeScalar(buf *bytes.Buffer, v reflect.Value) error {
	v = indirect(v)
	switch v.Kind() {
	case reflect.Bool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.String:
		buf.WriteString(quoteString(v.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("non-finite float %v", f)
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		// Keep floats distinguishable from integers
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		buf.WriteString(s)
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
	return nil
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func quoteKey(k string) string {
	if k == "" {
		return `""`
	}
	for _, r := range k {
		if !isBareChar(r) {
			return quoteString(k)
		}
	}
	return k
}
