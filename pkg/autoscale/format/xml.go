package format

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	smithytime "github.com/aws/smithy-go/time"
	"github.com/beevik/etree"

	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
)

type requestIDSetter interface {
	SetRequestID(id string)
}

// DecodeResponse parses the XML body of a successful call to action and
// fills out from the <{action}Result> element, following "xml" struct
// tags. Repeated elements use the Name>member tag form. Elements with no
// matching field are ignored; absent elements leave pointer fields nil.
// The request ID from ResponseMetadata is stored when out embeds
// api.ResponseMetadata.
func DecodeResponse(action string, body io.Reader, out any) error {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return fmt.Errorf("parsing XML response: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("empty response document")
	}
	if root.Tag != action+"Response" {
		return fmt.Errorf("expecting %sResponse element, got %s", action, root.Tag)
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("cannot decode into %T", out)
	}
	// Status-only operations carry an empty result element, or none at all.
	if result := root.SelectElement(action + "Result"); result != nil {
		if err := decodeFields(result, rv.Elem()); err != nil {
			return fmt.Errorf("decoding %s: %w", result.Tag, err)
		}
	}
	if setter, ok := out.(requestIDSetter); ok {
		if el := root.FindElement("ResponseMetadata/RequestId"); el != nil {
			setter.SetRequestID(strings.TrimSpace(el.Text()))
		}
	}
	return nil
}

func decodeFields(el *etree.Element, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		typeField := rt.Field(i)
		field := rv.Field(i)
		fieldName := typeField.Tag.Get("xml")
		if fieldName == "-" {
			continue
		}
		if typeField.Anonymous && field.Kind() == reflect.Struct && fieldName == "" {
			if err := decodeFields(el, field); err != nil {
				return err
			}
			continue
		}
		if fieldName == "" {
			fieldName = typeField.Name
		}
		var innerName string
		if sep := strings.IndexByte(fieldName, '>'); sep >= 0 {
			innerName = fieldName[sep+1:]
			fieldName = fieldName[:sep]
		}
		child := el.SelectElement(fieldName)
		if child == nil {
			continue
		}
		if field.Kind() == reflect.Slice {
			if err := decodeList(child, innerName, field); err != nil {
				return fmt.Errorf("decoding field %s: %w", fieldName, err)
			}
			continue
		}
		if err := decodeValue(child, field); err != nil {
			return fmt.Errorf("decoding field %s: %w", fieldName, err)
		}
	}
	return nil
}

func decodeList(el *etree.Element, itemTag string, rv reflect.Value) error {
	if itemTag == "" {
		itemTag = "member"
	}
	items := el.SelectElements(itemTag)
	out := reflect.MakeSlice(rv.Type(), len(items), len(items))
	for i, item := range items {
		if err := decodeValue(item, out.Index(i)); err != nil {
			return fmt.Errorf("decoding item %d: %w", i+1, err)
		}
	}
	rv.Set(out)
	return nil
}

func decodeValue(el *etree.Element, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer:
		pv := reflect.New(rv.Type().Elem())
		if err := decodeValue(el, pv.Elem()); err != nil {
			return err
		}
		rv.Set(pv)
	case reflect.Struct:
		if rv.Type() == reflect.TypeOf(time.Time{}) {
			t, err := smithytime.ParseDateTime(strings.TrimSpace(el.Text()))
			if err != nil {
				return fmt.Errorf("parsing timestamp: %w", err)
			}
			rv.Set(reflect.ValueOf(t))
			break
		}
		return decodeFields(el, rv)
	case reflect.String:
		rv.SetString(strings.TrimSpace(el.Text()))
	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(el.Text()), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing int: %w", err)
		}
		rv.SetInt(i)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(el.Text()))
		if err != nil {
			return fmt.Errorf("parsing bool: %w", err)
		}
		rv.SetBool(b)
	case reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64)
		if err != nil {
			return fmt.Errorf("parsing float: %w", err)
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("cannot decode into type %s", rv.Type())
	}
	return nil
}

// DecodeError parses a non-2xx response body into an *api.Error. Bodies
// that are not the expected <ErrorResponse> document still produce a
// typed error carrying the HTTP status.
func DecodeError(statusCode int, body io.Reader) error {
	serviceErr := &api.Error{StatusCode: statusCode}
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil || doc.Root() == nil {
		return serviceErr
	}
	root := doc.Root()
	if el := root.FindElement("Error/Type"); el != nil {
		serviceErr.Type = strings.TrimSpace(el.Text())
	}
	if el := root.FindElement("Error/Code"); el != nil {
		serviceErr.Code = strings.TrimSpace(el.Text())
	}
	if el := root.FindElement("Error/Message"); el != nil {
		serviceErr.Message = strings.TrimSpace(el.Text())
	}
	if el := root.FindElement("RequestId"); el != nil {
		serviceErr.RequestID = strings.TrimSpace(el.Text())
	}
	return serviceErr
}
