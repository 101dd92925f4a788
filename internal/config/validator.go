package config

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"

	tabserrors "github.com/alexisbeaulieu97/tabs/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	tabKeyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _.-]*$`)
)

// KeyActions are the names accepted under keys: in a layout.
var KeyActions = []string{"up", "down", "left", "right", "enter", "tab", "shift_tab", "quit"}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return strings.ToLower(fld.Name)
			}
			return name
		})

		_ = v.RegisterValidation("tab_key", func(fl validator.FieldLevel) bool {
			return tabKeyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("key_action", func(fl validator.FieldLevel) bool {
			action := fl.Field().String()
			for _, known := range KeyActions {
				if action == known {
					return true
				}
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// ValidateLayout performs schema and cross-field validation on a layout.
func ValidateLayout(layout *Layout) error {
	if layout == nil {
		return tabserrors.NewValidationError("layout", "layout is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(layout); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(layout.Tabs))
	for i, tab := range layout.Tabs {
		if first, exists := seen[tab.Key]; exists {
			return tabserrors.NewValidationError(fieldForTab(i, "key"),
				fmt.Sprintf("duplicate tab key %q (first used by tabs[%d])", tab.Key, first), nil)
		}
		seen[tab.Key] = i
	}

	if layout.Active != "" {
		if _, ok := seen[layout.Active]; !ok {
			msg := fmt.Sprintf("unknown tab %q", layout.Active)
			if suggestion := closest(layout.Active, layout.TabKeys()); suggestion != "" {
				return tabserrors.NewValidationErrorWithSuggestion("active", msg, suggestion)
			}
			return tabserrors.NewValidationError("active", msg, nil)
		}
	}

	return nil
}

// closest returns the candidate nearest to s, or "" when none is near enough
// to be a plausible typo.
func closest(s string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(s), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(s)/3) {
		return ""
	}
	return best
}

// convertValidationError normalizes validator errors into layout validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "key_action" {
			actions := append([]string(nil), KeyActions...)
			sort.Strings(actions)
			msg = fmt.Sprintf("unknown key action %q (want one of %s)", ve.Value(), strings.Join(actions, ", "))
		}
		return tabserrors.NewValidationError(field, msg, err)
	}

	return tabserrors.NewValidationError("layout", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	_, field, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return field
}

func fieldForTab(index int, field string) string {
	return fmt.Sprintf("tabs[%d].%s", index, field)
}
