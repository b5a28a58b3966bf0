package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var jsonFieldNames sync.Once

// UseJSONFieldNames makes validation errors report the JSON name of a field
// instead of the Go struct field name. Only the first call registers.
func UseJSONFieldNames() {
	jsonFieldNames.Do(registerJSONFieldNames)
}

func registerJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// BindingErrorMessage turns a request binding error into a client message
// that names the offending field.
func BindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		msgs := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			switch fe.Tag() {
			case "required":
				msgs = append(msgs, fmt.Sprintf("field '%s' is required", fe.Field()))
			default:
				msgs = append(msgs, fmt.Sprintf("field '%s' failed validation '%s'", fe.Field(), fe.Tag()))
			}
		}
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field '%s' must be of type %s", typeErr.Field, typeErr.Type.String())
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "request body is not valid JSON"
	}

	if errors.Is(err, io.EOF) {
		return "request body is required"
	}

	return "invalid request data: " + err.Error()
}
