package tabs

import (
	"slices"

	"github.com/alexisbeaulieu97/tabs/pkg/logger"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

// TabView holds a set of keyed views and shows exactly one of them, the active
// tab. It has no bar of its own; see TabPanel for the combined widget.
//
// Keys keep a display order that drives cycling with Next and Prev. An optional
// receiver lets other widgets request tab switches, and an optional sender
// announces every switch.
type TabView[K comparable] struct {
	active    K
	hasActive bool
	views     map[K]view.View
	order     []K

	barRx       *Receiver[K]
	activeKeyTx *Sender[K]

	invalidated bool
	log         *logger.Logger
}

// NewTabView returns an empty TabView.
func NewTabView[K comparable]() *TabView[K] {
	return &TabView[K]{
		views:       make(map[K]view.View),
		invalidated: true,
	}
}

// WithLogger sets the logger used for dropped notifications.
func (t *TabView[K]) WithLogger(log *logger.Logger) *TabView[K] {
	t.log = log.Component("tab_view")
	return t
}

// ActiveTab returns the active key, if any.
func (t *TabView[K]) ActiveTab() (K, bool) {
	return t.active, t.hasActive
}

// ActiveView returns the view of the active tab, or nil.
func (t *TabView[K]) ActiveView() view.View {
	if !t.hasActive {
		return nil
	}
	return t.views[t.active]
}

// View returns the view registered under key.
func (t *TabView[K]) View(key K) (view.View, bool) {
	v, ok := t.views[key]
	return v, ok
}

// Views returns every view in display order.
func (t *TabView[K]) Views() []view.View {
	out := make([]view.View, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.views[key])
	}
	return out
}

// TabOrder returns a copy of the display order.
func (t *TabView[K]) TabOrder() []K {
	return slices.Clone(t.order)
}

// Len returns the number of tabs.
func (t *TabView[K]) Len() int {
	return len(t.order)
}

// SetActiveTab makes key the visible tab and announces it on the active key
// sender.
func (t *TabView[K]) SetActiveTab(key K) error {
	if _, ok := t.views[key]; !ok {
		return NewErrKeyNotFound(key)
	}
	if t.activeKeyTx != nil {
		if err := t.activeKeyTx.Send(key); err != nil {
			t.log.Debug("could not announce active tab", "key", key, "error", err.Error())
		}
	}
	t.active, t.hasActive = key, true
	t.invalidated = true
	return nil
}

// WithActiveTab is the chaining form of SetActiveTab. The receiver is returned
// unchanged together with the error when key is unknown.
func (t *TabView[K]) WithActiveTab(key K) (*TabView[K], error) {
	return t, t.SetActiveTab(key)
}

// AddTab registers v under key and makes it active. An existing key keeps its
// position and has its view replaced.
func (t *TabView[K]) AddTab(key K, v view.View) {
	if _, exists := t.views[key]; !exists {
		t.order = append(t.order, key)
	}
	t.views[key] = v
	t.active, t.hasActive = key, true
	t.invalidated = true
}

// WithTab is the chaining form of AddTab.
func (t *TabView[K]) WithTab(key K, v view.View) *TabView[K] {
	t.AddTab(key, v)
	return t
}

// AddTabAt is AddTab inserting the key at pos. Positions past the end append.
func (t *TabView[K]) AddTabAt(key K, v view.View, pos int) {
	if _, exists := t.views[key]; !exists {
		t.order = insertAt(t.order, key, pos)
	}
	t.views[key] = v
	t.active, t.hasActive = key, true
	t.invalidated = true
}

// WithTabAt is the chaining form of AddTabAt.
func (t *TabView[K]) WithTabAt(key K, v view.View, pos int) *TabView[K] {
	t.AddTabAt(key, v, pos)
	return t
}

// SwapTabs exchanges the positions of a and b. Unknown keys make it a no-op.
func (t *TabView[K]) SwapTabs(a, b K) {
	i, j := slices.Index(t.order, a), slices.Index(t.order, b)
	if i < 0 || j < 0 {
		return
	}
	t.order[i], t.order[j] = t.order[j], t.order[i]
	t.invalidated = true
}

// RemoveTab deletes key. Removing the active tab leaves no tab active; the
// caller picks the next one.
func (t *TabView[K]) RemoveTab(key K) error {
	if _, ok := t.views[key]; !ok {
		return NewErrKeyNotFound(key)
	}
	delete(t.views, key)
	t.order = slices.DeleteFunc(t.order, func(k K) bool { return k == key })
	if t.hasActive && t.active == key {
		var zero K
		t.active, t.hasActive = zero, false
	}
	t.invalidated = true
	return nil
}

// indexOf returns the position of key, or len(order) when it is missing.
func (t *TabView[K]) indexOf(key K) int {
	if i := slices.Index(t.order, key); i >= 0 {
		return i
	}
	return len(t.order)
}

// Next activates the tab after the active one, wrapping around.
func (t *TabView[K]) Next() {
	if !t.hasActive || len(t.order) == 0 {
		return
	}
	n := len(t.order)
	t.activate(t.order[(t.indexOf(t.active)+1)%n])
}

// Prev activates the tab before the active one, wrapping around.
func (t *TabView[K]) Prev() {
	if !t.hasActive || len(t.order) == 0 {
		return
	}
	n := len(t.order)
	t.activate(t.order[(n+t.indexOf(t.active)-1)%n])
}

func (t *TabView[K]) activate(key K) {
	if err := t.SetActiveTab(key); err != nil {
		t.log.Debug("tab order out of sync with views", "key", key)
	}
}

// SetBarRx sets the receiver polled for tab switch requests.
func (t *TabView[K]) SetBarRx(rx *Receiver[K]) {
	t.barRx = rx
}

// SetActiveKeyTx sets the sender that announces tab switches.
func (t *TabView[K]) SetActiveKeyTx(tx *Sender[K]) {
	t.activeKeyTx = tx
}

func (t *TabView[K]) Draw(p *view.Printer) {
	if v := t.ActiveView(); v != nil {
		v.Draw(p)
	}
}

func (t *TabView[K]) Layout(size view.Vec2) {
	t.invalidated = false
	if v := t.ActiveView(); v != nil {
		v.Layout(size)
	}
}

// RequiredSize applies at most one pending switch request before measuring
// the active view.
func (t *TabView[K]) RequiredSize(constraint view.Vec2) view.Vec2 {
	if key, ok := t.barRx.TryRecv(); ok {
		if err := t.SetActiveTab(key); err != nil {
			t.log.Debug("could not accept tab bar event", "error", err.Error())
		}
	}
	if v := t.ActiveView(); v != nil {
		return v.RequiredSize(constraint)
	}
	return view.Vec2{X: 1, Y: 1}
}

func (t *TabView[K]) OnEvent(ev view.Event) view.EventResult {
	if v := t.ActiveView(); v != nil {
		return v.OnEvent(ev)
	}
	return view.Ignored()
}

func (t *TabView[K]) TakeFocus(source view.Direction) (view.EventResult, error) {
	if v := t.ActiveView(); v != nil {
		return v.TakeFocus(source)
	}
	return view.Ignored(), view.ErrCannotFocus
}

// CallOnAny visits every tab, not only the active one.
func (t *TabView[K]) CallOnAny(sel view.Selector, fn func(view.View)) {
	for _, key := range t.order {
		t.views[key].CallOnAny(sel, fn)
	}
}

func (t *TabView[K]) FocusView(sel view.Selector) (view.EventResult, error) {
	if v := t.ActiveView(); v != nil {
		return v.FocusView(sel)
	}
	return view.Ignored(), view.ErrViewNotFound
}

func (t *TabView[K]) NeedsRelayout() bool {
	if t.invalidated {
		return true
	}
	if v := t.ActiveView(); v != nil {
		return v.NeedsRelayout()
	}
	return false
}

func (t *TabView[K]) ImportantArea(size view.Vec2) view.Rect {
	if v := t.ActiveView(); v != nil {
		return v.ImportantArea(size)
	}
	return view.RectFromSize(view.Vec2{X: 1, Y: 1})
}

func insertAt[K any](s []K, v K, pos int) []K {
	if pos < 0 {
		pos = 0
	}
	if pos >= len(s) {
		return append(s, v)
	}
	return slices.Insert(s, pos, v)
}
