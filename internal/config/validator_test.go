package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	tabserrors "github.com/alexisbeaulieu97/tabs/pkg/errors"
)

func validLayout() *Layout {
	return &Layout{
		Tabs: []Tab{
			{Key: "about", Kind: KindText},
			{Key: "notes", Kind: KindTextarea},
		},
	}
}

func TestValidateLayout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		mutate     func(*Layout)
		field      string
		message    string
		suggestion string
	}{
		{
			name:   "valid layout passes",
			mutate: func(*Layout) {},
		},
		{
			name:   "empty key",
			mutate: func(l *Layout) { l.Tabs[0].Key = "" },
			field:  "tabs[0].key",
		},
		{
			name:    "key with punctuation",
			mutate:  func(l *Layout) { l.Tabs[1].Key = "!notes" },
			field:   "tabs[1].key",
			message: "tab_key",
		},
		{
			name:    "unknown kind",
			mutate:  func(l *Layout) { l.Tabs[0].Kind = "canvas" },
			field:   "tabs[0].kind",
			message: "oneof",
		},
		{
			name:    "unknown theme",
			mutate:  func(l *Layout) { l.Theme = "neon" },
			field:   "theme",
			message: "oneof",
		},
		{
			name:    "unknown border",
			mutate:  func(l *Layout) { l.Border = "dotted" },
			field:   "border",
			message: "oneof",
		},
		{
			name:   "dark theme with rounded border",
			mutate: func(l *Layout) { l.Theme, l.Border = "dark", "rounded" },
		},
		{
			name:    "duplicate keys",
			mutate:  func(l *Layout) { l.Tabs[1].Key = "about" },
			field:   "tabs[1].key",
			message: `duplicate tab key "about"`,
		},
		{
			name:       "active tab typo gets a suggestion",
			mutate:     func(l *Layout) { l.Active = "nots" },
			field:      "active",
			message:    `unknown tab "nots"`,
			suggestion: "notes",
		},
		{
			name:    "active tab far from any key",
			mutate:  func(l *Layout) { l.Active = "settings" },
			field:   "active",
			message: `unknown tab "settings"`,
		},
		{
			name:    "unknown key action",
			mutate:  func(l *Layout) { l.Bindings = map[string][]string{"jump": {"J"}} },
			field:   "keys[jump]",
			message: `unknown key action "jump"`,
		},
		{
			name:   "key action without keys",
			mutate: func(l *Layout) { l.Bindings = map[string][]string{"quit": {}} },
			field:  "keys[quit]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			layout := validLayout()
			tc.mutate(layout)
			err := ValidateLayout(layout)

			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *tabserrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
			require.Contains(t, validationErr.Message, tc.message)
			require.Equal(t, tc.suggestion, validationErr.Suggestion)
		})
	}
}

func TestValidateNilLayout(t *testing.T) {
	t.Parallel()

	var validationErr *tabserrors.ValidationError
	require.ErrorAs(t, ValidateLayout(nil), &validationErr)
	require.Equal(t, "layout", validationErr.Field)
}

func TestClosest(t *testing.T) {
	t.Parallel()

	candidates := []string{"about", "notes", "log"}
	require.Equal(t, "notes", closest("Notes", candidates))
	require.Equal(t, "log", closest("lg", candidates))
	require.Empty(t, closest("preferences", candidates))
	require.Empty(t, closest("x", nil))
}
