package host

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

var namedKeys = map[string]tea.KeyType{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"esc":       tea.KeyEsc,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+c":    tea.KeyCtrlC,
}

// ParseInput turns a comma separated script such as "down,enter,x,click:3:0"
// into the messages a terminal would send. Key names follow bubbletea's
// spelling; a single character types it; click:X:Y presses and releases the
// left button at column X, row Y.
func ParseInput(script string) ([]tea.Msg, error) {
	var msgs []tea.Msg
	for _, item := range strings.Split(script, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parsed, err := parseItem(item)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, parsed...)
	}
	return msgs, nil
}

func parseItem(item string) ([]tea.Msg, error) {
	if rest, ok := strings.CutPrefix(item, "click:"); ok {
		x, y, found := strings.Cut(rest, ":")
		if !found {
			return nil, fmt.Errorf("click %q: want click:X:Y", item)
		}
		col, err := strconv.Atoi(x)
		if err != nil {
			return nil, fmt.Errorf("click %q: column: %w", item, err)
		}
		row, err := strconv.Atoi(y)
		if err != nil {
			return nil, fmt.Errorf("click %q: row: %w", item, err)
		}
		return []tea.Msg{
			tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		}, nil
	}

	if kt, ok := namedKeys[strings.ToLower(item)]; ok {
		return []tea.Msg{tea.KeyMsg{Type: kt}}, nil
	}
	if item == "space" {
		return []tea.Msg{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}}, nil
	}
	if utf8.RuneCountInString(item) == 1 {
		r, _ := utf8.DecodeRuneInString(item)
		return []tea.Msg{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}}, nil
	}
	return nil, fmt.Errorf("unknown key %q", item)
}

// Feed delivers msgs to p as if a terminal had sent them and stops early
// once the program quits.
func Feed(p *Program, msgs ...tea.Msg) {
	for _, msg := range msgs {
		if p.Quitting() {
			return
		}
		p.Update(msg)
	}
}
