package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// maxFormMemory bounds the in-memory part of multipart bodies.
const maxFormMemory = 10 << 20

// ErrMalformedBody is returned when the request body cannot be parsed.
var ErrMalformedBody = errors.New("malformed request body")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ReadFields collects the request body into a flat field map. Form bodies
// (urlencoded or multipart) keep the first value of each key. JSON object
// bodies are accepted too; scalar values are converted to strings and null
// counts as absent. An empty body yields an empty map.
func ReadFields(r *http.Request) (map[string]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		return readJSONFields(r.Body)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields, nil
}

func readJSONFields(body io.Reader) (map[string]string, error) {
	var raw map[string]any
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		if value == nil {
			continue
		}
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q must be a string", ErrMalformedBody, key)
		}
		fields[key] = s
	}
	return fields, nil
}

// BindFields decodes fields into dst, a pointer to a struct whose fields are
// tagged with mapstructure names and validate rules. It returns the wire
// names of the required fields that were absent, in struct field order.
func BindFields(fields map[string]string, dst interface{}) ([]string, error) {
	if err := mapstructure.Decode(fields, dst); err != nil {
		return nil, fmt.Errorf("failed to decode request fields: %w", err)
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing, nil
}
