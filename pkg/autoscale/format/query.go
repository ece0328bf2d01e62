package format

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"

	smithytime "github.com/aws/smithy-go/time"
)

// EncodeQuery flattens req into values following the Auto Scaling query
// convention: scalar fields become Name=value entries, slices of scalars
// become Name.member.1..N and slices of structs become
// Name.member.N.Field. Nil pointers, empty strings and empty slices are
// omitted. Field names come from the "url" struct tag; untagged fields
// are skipped.
func EncodeQuery(values url.Values, req any) error {
	rv := reflect.ValueOf(req)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("cannot encode %s as query parameters", rv.Type())
	}
	return encodeQueryFields(values, rv, "")
}

func encodeQueryFields(values url.Values, rv reflect.Value, prefix string) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		typeField := rt.Field(i)
		field := rv.Field(i)
		if typeField.Anonymous && field.Kind() == reflect.Struct {
			if err := encodeQueryFields(values, field, prefix); err != nil {
				return err
			}
			continue
		}
		name := typeField.Tag.Get("url")
		if name == "" || name == "-" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if err := encodeQueryField(values, field, name); err != nil {
			return fmt.Errorf("encoding field %s: %w", name, err)
		}
	}
	return nil
}

func encodeQueryField(values url.Values, rv reflect.Value, name string) error {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return encodeQueryField(values, rv.Elem(), name)
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i)
			memberName := fmt.Sprintf("%s.member.%d", name, i+1)
			if err := encodeQueryField(values, item, memberName); err != nil {
				return err
			}
		}
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			if t.IsZero() {
				return nil
			}
			values.Set(name, smithytime.FormatDateTime(t))
			break
		}
		// Struct members contribute their own field suffix.
		return encodeQueryFields(values, rv, name)
	case reflect.String:
		if rv.String() == "" {
			return nil
		}
		values.Set(name, rv.String())
	case reflect.Int, reflect.Int64:
		values.Set(name, strconv.FormatInt(rv.Int(), 10))
	case reflect.Bool:
		values.Set(name, strconv.FormatBool(rv.Bool()))
	case reflect.Float64:
		values.Set(name, strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	default:
		return fmt.Errorf("cannot encode type %s", rv.Type())
	}
	return nil
}
