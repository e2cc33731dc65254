// Package validation checks write request bodies before they reach a
// controller. Only the first violation is reported, in field declaration order.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pixell-river/hr-directory/internal/adapter/api/dto"
)

// Mode selects how missing fields are treated.
type Mode int

const (
	// Create requires every field tagged required.
	Create Mode = iota
	// Update checks only the fields present in the body.
	Update
)

// InvalidBodyMessage is returned when the body is not a JSON object.
const InvalidBodyMessage = "Invalid request body"

// patterns are the regexp-backed tags, keyed by tag name.
var patterns = map[string]string{
	"tendigits": `^[0-9]{10}$`,
}

// Validator evaluates request structs tagged with `validate:"..."`.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom pattern tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	for tag, expr := range patterns {
		re := regexp.MustCompile(expr)
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	return &Validator{validate: v}
}

// field describes one JSON-visible string field of a request struct.
type field struct {
	name   string // json name
	goName string
	index  int
}

// schema is the reflected shape of a request struct.
type schema struct {
	typ     reflect.Type
	fields  []field
	allowed map[string]bool
}

func newSchema(t reflect.Type) schema {
	s := schema{typ: t, allowed: map[string]bool{}}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type.Kind() != reflect.String {
			continue
		}
		name := strings.Split(sf.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			name = sf.Name
		}
		s.fields = append(s.fields, field{name: name, goName: sf.Name, index: i})
		s.allowed[name] = true
	}
	return s
}

// Body returns a middleware validating the JSON body against T.
func Body[T any](v *Validator, mode Mode) gin.HandlerFunc {
	s := newSchema(reflect.TypeOf((*T)(nil)).Elem())

	return func(c *gin.Context) {
		var raw map[string]any
		if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil || raw == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(InvalidBodyMessage))
			return
		}

		if msg := v.check(s, raw, mode); msg != "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(msg))
			return
		}

		c.Next()
	}
}

func (v *Validator) check(s schema, raw map[string]any, mode Mode) string {
	messages := map[string]string{}

	target := reflect.New(s.typ).Elem()
	var present []string
	for _, f := range s.fields {
		val, ok := raw[f.name]
		if !ok {
			continue
		}
		str, isString := val.(string)
		switch {
		case !isString:
			messages[f.name] = fmt.Sprintf("%q must be a string", f.name)
		case str == "":
			messages[f.name] = fmt.Sprintf("%q is not allowed to be empty", f.name)
		default:
			target.Field(f.index).SetString(str)
			present = append(present, f.goName)
		}
	}

	var err error
	switch {
	case mode == Create:
		err = v.validate.Struct(target.Interface())
	case len(present) > 0:
		err = v.validate.StructPartial(target.Interface(), present...)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			name := jsonName(s, fe.StructField())
			if _, seen := messages[name]; !seen {
				messages[name] = message(name, fe)
			}
		}
	}

	for _, f := range s.fields {
		if msg, ok := messages[f.name]; ok {
			return msg
		}
	}

	var unknown []string
	for key := range raw {
		if !s.allowed[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Sprintf("%q is not allowed", unknown[0])
	}

	return ""
}

func jsonName(s schema, goName string) string {
	for _, f := range s.fields {
		if f.goName == goName {
			return f.name
		}
	}
	return goName
}

func message(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", name)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", name, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", name, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", name)
	}
	if expr, ok := patterns[fe.Tag()]; ok {
		return fmt.Sprintf("%q with value %q fails to match the required pattern: /%s/", name, fe.Value(), expr)
	}
	return fmt.Sprintf("%q is invalid", name)
}
