// Package contract is the single source of truth for the HTTP API surface.
// Each operation is described once — method, path template, input rule and
// per-status response rules — and both the server router and the API client
// bind against the same entry, so request/response shapes cannot drift.
package contract

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule validates a request or response value against its declared shape.
type Rule func(v any) error

// FieldError names the first offending field of a failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Operation describes one API operation. Immutable after registration.
type Operation struct {
	Name      string
	Method    string
	Path      string
	Input     Rule // nil when the operation accepts no body
	Responses map[int]Rule
}

// Registry maps logical operation names to their wire shapes. It is
// configuration data: populated once at process start, never mutated.
type Registry struct {
	order []string
	ops   map[string]Operation
}

// NewRegistry builds a registry from the given operations. Duplicate names panic,
// since that is a programming error caught at startup.
func NewRegistry(ops ...Operation) *Registry {
	r := &Registry{ops: make(map[string]Operation, len(ops))}
	for _, op := range ops {
		if _, exists := r.ops[op.Name]; exists {
			panic(fmt.Sprintf("contract: duplicate operation %q", op.Name))
		}
		r.ops[op.Name] = op
		r.order = append(r.order, op.Name)
	}
	return r
}

// Get returns the operation registered under name.
func (r *Registry) Get(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// MustGet returns the operation or panics. For wiring done at process start.
func (r *Registry) MustGet(name string) Operation {
	op, ok := r.ops[name]
	if !ok {
		panic(fmt.Sprintf("contract: unknown operation %q", name))
	}
	return op
}

// Operations returns all operations in registration order.
func (r *Registry) Operations() []Operation {
	out := make([]Operation, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ops[name])
	}
	return out
}

// BuildPath substitutes :param placeholders in a path template. A placeholder
// with no matching key is left as-is; callers must supply all required params.
func BuildPath(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}
	segments := strings.Split(template, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if val, ok := params[seg[1:]]; ok {
			segments[i] = url.PathEscape(val)
		}
	}
	return strings.Join(segments, "/")
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Object returns a rule that checks a value is a T (or *T) satisfying T's
// validation tags.
func Object[T any]() Rule {
	return func(v any) error {
		val, ok := v.(T)
		if !ok {
			ptr, okPtr := v.(*T)
			if !okPtr {
				return &FieldError{Message: fmt.Sprintf("expected %T, got %T", val, v)}
			}
			val = *ptr
		}
		return translate(validate.Struct(val))
	}
}

// List returns a rule for a slice of T, validating every element.
func List[T any]() Rule {
	elem := Object[T]()
	return func(v any) error {
		items, ok := v.([]T)
		if !ok {
			ptr, okPtr := v.(*[]T)
			if !okPtr {
				return &FieldError{Message: fmt.Sprintf("expected []%T, got %T", *new(T), v)}
			}
			items = *ptr
		}
		for i := range items {
			if err := elem(items[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Empty returns a rule for bodyless responses.
func Empty() Rule {
	return func(any) error { return nil }
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{Field: fe.Field(), Message: messageFor(fe)}
	}
	return err
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
