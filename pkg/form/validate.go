package form

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"p9e.in/treeflow/pkg/apperr"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("int64", isInt64); err != nil {
			panic(err)
		}
	})
	return validate
}

// isInt64 accepts unsigned decimal digits that fit in an int64.
func isInt64(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || s[0] == '+' || s[0] == '-' {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// Rules maps a field name to a validator tag string, e.g. "required,int64".
type Rules map[string]string

// Merge returns a copy of r with other's entries added or replaced.
func (r Rules) Merge(other Rules) Rules {
	out := make(Rules, len(r)+len(other))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// FieldError names a field that failed and the rule it failed.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validate checks v against rules. Missing fields are validated as empty
// strings so "required" rejects them and "omitempty" lets them through.
// The returned error is an *apperr.Error of kind Validation.
func (v Values) Validate(message string, rules Rules) error {
	data := make(map[string]interface{}, len(rules))
	ruleMap := make(map[string]interface{}, len(rules))
	for field, rule := range rules {
		data[field] = strings.TrimSpace(v[field])
		ruleMap[field] = rule
	}

	errs := Validator().ValidateMap(data, ruleMap)
	if len(errs) == 0 {
		return nil
	}

	fields := make([]FieldError, 0, len(errs))
	for field, err := range errs {
		fe := FieldError{Field: field}
		var verrs validator.ValidationErrors
		if e, ok := err.(error); ok && errors.As(e, &verrs) && len(verrs) > 0 {
			fe.Rule = verrs[0].Tag()
		}
		fields = append(fields, fe)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	return apperr.Validation(message, map[string]interface{}{"fields": fields})
}
