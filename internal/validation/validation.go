// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package validation checks configuration structs and reports problems by
// the configuration keys a user writes, such as "log.file".
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var instance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(keyName)

	return v
}

// keyName reports a field by its mapstructure key, falling back to the Go
// field name.
func keyName(
	field reflect.StructField,
) string {
	name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// hints render a readable problem for known tags.
var hints = map[string]func(fe validator.FieldError) string{
	"required": func(_ validator.FieldError) string {
		return "is required"
	},
	"oneof": func(fe validator.FieldError) string {
		return fmt.Sprintf("%q must be one of [%s]", fe.Value(), fe.Param())
	},
	"filepath": func(fe validator.FieldError) string {
		return fmt.Sprintf("%q is not a file path", fe.Value())
	},
}

// Struct validates a struct and returns the error message and false if invalid.
func Struct(
	v any,
) (string, bool) {
	if err := instance.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err.Error(), false
		}

		return formatErrors(validationErrors), false
	}

	return "", true
}

// formatErrors joins one "key: problem" entry per failed field. Tags
// without a hint keep the validator's own message.
func formatErrors(
	errs validator.ValidationErrors,
) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		fn, ok := hints[fe.Tag()]
		if !ok {
			msgs = append(msgs, fe.Error())
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldKey(fe), fn(fe)))
	}

	return strings.Join(msgs, "; ")
}

// fieldKey drops the root struct name from the namespace, so
// "Config.log.file" becomes "log.file".
func fieldKey(
	fe validator.FieldError,
) string {
	_, key, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return key
}
