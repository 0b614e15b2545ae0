// Package items holds the validation and statistics helpers for domain items.
package items

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	playgroundValidator "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/adfharrison1/go-items/pkg/domain"
)

const (
	MinNameLength = 3
	MaxNameLength = 100
)

// messages maps "field.tag" of a failed rule to what the user sees.
// Each field stops at its first failing tag, so a short blank name reports its length.
var messages = map[string]string{
	"name.required":        "Name is required",
	"name.notblank":        "Name is required",
	"name.min":             fmt.Sprintf("Name must be at least %d characters", MinNameLength),
	"name.max":             fmt.Sprintf("Name must be less than %d characters", MaxNameLength),
	"description.required": "Description is required",
	"description.notblank": "Description is required",
}

// JS \s, as used by the browser form: ASCII whitespace plus \v, Unicode separators and BOM
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

var validate = newValidator()

func newValidator() *playgroundValidator.Validate {
	v := playgroundValidator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateItem returns a message per invalid field; an empty map means the item is valid.
func ValidateItem(item domain.Item) map[string]string {
	errs := make(map[string]string)

	err := validate.Struct(item)
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(playgroundValidator.ValidationErrors)
	if !ok {
		panic(err)
	}

	for _, e := range fieldErrs {
		key := e.Field() + "." + e.Tag()
		if msg, found := messages[key]; found {
			errs[e.Field()] = msg
			continue
		}
		errs[e.Field()] = e.Error()
	}
	return errs
}

// ValidateEmail reports whether s looks like local@domain.tld
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}
