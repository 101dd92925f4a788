package tabs

import (
	"slices"

	"github.com/alexisbeaulieu97/tabs/pkg/logger"
	"github.com/alexisbeaulieu97/tabs/pkg/ui/components"
	"github.com/alexisbeaulieu97/tabs/pkg/view"
)

// TabPanel combines a TabView with a TabBar inside a frame. The bar can sit on
// any edge and focus moves between bar and content with the arrow keys or the
// mouse.
//
// Pressing a bar button sends its key to the TabView over one channel; the
// TabView announces the resulting switch to the bar over another. Both are
// polled during RequiredSize, so a click shows up after the next layout pass.
type TabPanel[K comparable] struct {
	tabs *TabView[K]
	bar  *TabBar[K]

	tx       *Sender[K]
	barRx    *Receiver[K]
	activeRx *Receiver[K]

	size        view.Vec2
	barSize     view.Vec2
	contentSize view.Vec2
	barFocused  bool
	align       Align
	placement   Placement
	theme       components.Theme
	log         *logger.Logger
}

// NewTabPanel returns an empty panel with the bar at the top, aligned to the
// start, holding focus.
func NewTabPanel[K comparable]() *TabPanel[K] {
	tx, barRx := NewChannel[K](DefaultChannelCapacity)
	activeTx, activeRx := NewChannel[K](DefaultChannelCapacity)

	tabs := NewTabView[K]()
	tabs.SetBarRx(barRx)
	tabs.SetActiveKeyTx(activeTx)

	return &TabPanel[K]{
		tabs:        tabs,
		bar:         NewTabBar(activeRx).WithPlacement(HorizontalTop).WithAlignment(AlignStart),
		tx:          tx,
		barRx:       barRx,
		activeRx:    activeRx,
		barSize:     view.Vec2{X: 1, Y: 1},
		contentSize: view.Vec2{X: 1, Y: 1},
		barFocused:  true,
		align:       AlignStart,
		placement:   HorizontalTop,
		theme:       components.DefaultTheme(),
	}
}

// WithLogger sets the logger for the panel and its parts.
func (p *TabPanel[K]) WithLogger(log *logger.Logger) *TabPanel[K] {
	p.log = log.Component("tab_panel")
	p.tabs.WithLogger(log)
	p.bar.WithLogger(log)
	return p
}

// WithTheme sets the theme used for the frame and the bar.
func (p *TabPanel[K]) WithTheme(theme components.Theme) *TabPanel[K] {
	p.theme = theme
	p.bar.WithTheme(theme)
	return p
}

// ActiveTab returns the active key, if any.
func (p *TabPanel[K]) ActiveTab() (K, bool) {
	return p.tabs.ActiveTab()
}

// ActiveView returns the view of the active tab, or nil.
func (p *TabPanel[K]) ActiveView() view.View {
	return p.tabs.ActiveView()
}

// Views returns every view in display order.
func (p *TabPanel[K]) Views() []view.View {
	return p.tabs.Views()
}

// TabOrder returns a copy of the display order.
func (p *TabPanel[K]) TabOrder() []K {
	return p.tabs.TabOrder()
}

// BarFocused reports whether the bar, rather than the content, holds focus.
func (p *TabPanel[K]) BarFocused() bool {
	return p.barFocused
}

// Bar returns the panel's bar.
func (p *TabPanel[K]) Bar() *TabBar[K] {
	return p.bar
}

// SetActiveTab makes key the visible tab.
func (p *TabPanel[K]) SetActiveTab(key K) error {
	return p.tabs.SetActiveTab(key)
}

// WithActiveTab is the chaining form of SetActiveTab. The receiver is returned
// unchanged together with the error when key is unknown.
func (p *TabPanel[K]) WithActiveTab(key K) (*TabPanel[K], error) {
	return p, p.tabs.SetActiveTab(key)
}

// AddTab registers v under key and makes it active.
func (p *TabPanel[K]) AddTab(key K, v view.View) {
	p.tabs.AddTab(key, v)
	p.bar.AddButton(p.tx, key)
	p.mirrorActive()
}

// WithTab is the chaining form of AddTab.
func (p *TabPanel[K]) WithTab(key K, v view.View) *TabPanel[K] {
	p.AddTab(key, v)
	return p
}

// AddTabAt registers v under key at pos and makes it active.
func (p *TabPanel[K]) AddTabAt(key K, v view.View, pos int) {
	p.tabs.AddTabAt(key, v, pos)
	p.bar.AddButtonAt(p.tx, key, pos)
	p.mirrorActive()
}

// WithTabAt is the chaining form of AddTabAt.
func (p *TabPanel[K]) WithTabAt(key K, v view.View, pos int) *TabPanel[K] {
	p.AddTabAt(key, v, pos)
	return p
}

// SwapTabs exchanges the positions of a and b.
func (p *TabPanel[K]) SwapTabs(a, b K) {
	p.tabs.SwapTabs(a, b)
	p.bar.SwapButtons(a, b)
}

// RemoveTab deletes key. No other tab becomes active.
func (p *TabPanel[K]) RemoveTab(key K) error {
	if err := p.tabs.RemoveTab(key); err != nil {
		return err
	}
	p.bar.RemoveButton(key)
	p.mirrorActive()
	return nil
}

// mirrorActive makes the bar highlight the registry's active tab after a
// structural change. Announcements still queued predate the change and are
// dropped.
func (p *TabPanel[K]) mirrorActive() {
	p.activeRx.Latest()
	active := noIndex
	if key, ok := p.tabs.ActiveTab(); ok {
		active = p.bar.index(key)
	}
	p.bar.setActive(active)
}

// Next activates the tab after the active one, wrapping around.
func (p *TabPanel[K]) Next() {
	p.tabs.Next()
}

// Prev activates the tab before the active one, wrapping around.
func (p *TabPanel[K]) Prev() {
	p.tabs.Prev()
}

// WithBarAlignment sets how the bar's buttons are positioned.
func (p *TabPanel[K]) WithBarAlignment(a Align) *TabPanel[K] {
	p.SetBarAlignment(a)
	return p
}

// SetBarAlignment sets how the bar's buttons are positioned.
func (p *TabPanel[K]) SetBarAlignment(a Align) {
	p.align = a
	p.bar.SetAlignment(a)
}

// BarAlignment returns how the bar's buttons are positioned.
func (p *TabPanel[K]) BarAlignment() Align {
	return p.align
}

// WithBarPlacement sets the edge the bar is attached to.
func (p *TabPanel[K]) WithBarPlacement(pl Placement) *TabPanel[K] {
	p.SetBarPlacement(pl)
	return p
}

// SetBarPlacement sets the edge the bar is attached to.
func (p *TabPanel[K]) SetBarPlacement(pl Placement) {
	p.placement = pl
	p.bar.SetPlacement(pl)
}

// BarPlacement returns the edge the bar is attached to.
func (p *TabPanel[K]) BarPlacement() Placement {
	return p.placement
}

// Close disconnects both channels. Buttons pressed afterwards only log.
func (p *TabPanel[K]) Close() {
	p.barRx.Close()
	p.activeRx.Close()
}

// syncBar rebuilds the bar's buttons when the tab order was changed behind the
// panel's back, for example through a view found with CallOnAny.
func (p *TabPanel[K]) syncBar() {
	order := p.tabs.TabOrder()
	if slices.Equal(order, p.bar.Keys()) {
		return
	}
	p.log.Debug("rebuilding tab bar", "tabs", len(order))

	for _, key := range p.bar.Keys() {
		p.bar.RemoveButton(key)
	}
	for _, key := range order {
		p.bar.AddButton(p.tx, key)
	}
	p.mirrorActive()
	p.bar.cursor = p.bar.active
}

func (p *TabPanel[K]) RequiredSize(constraint view.Vec2) view.Vec2 {
	p.syncBar()
	content := p.tabs.RequiredSize(constraint)
	p.barSize = p.bar.RequiredSize(constraint)

	if p.placement.IsHorizontal() {
		return view.Vec2{
			X: max(p.barSize.X, content.X) + 2,
			Y: p.barSize.Y + content.Y + 1,
		}
	}
	return view.Vec2{
		X: p.barSize.X + content.X + 1,
		Y: max(p.barSize.Y, content.Y) + 2,
	}
}

// barOrigin and contentOrigin are relative to the panel's top-left corner.
func (p *TabPanel[K]) barOrigin(size view.Vec2) view.Vec2 {
	switch p.placement {
	case HorizontalBottom:
		return view.Vec2{X: 1, Y: clamp(size.Y-p.barSize.Y, 0, size.Y-1)}
	case VerticalLeft:
		return view.Vec2{X: 0, Y: 1}
	case VerticalRight:
		return view.Vec2{X: clamp(size.X-p.barSize.X, 0, size.X-1), Y: 1}
	default:
		return view.Vec2{X: 1, Y: 0}
	}
}

func (p *TabPanel[K]) contentOrigin() view.Vec2 {
	switch p.placement {
	case HorizontalTop:
		return view.Vec2{X: 1, Y: p.barSize.Y}
	case VerticalLeft:
		return view.Vec2{X: p.barSize.X, Y: 1}
	default:
		return view.Vec2{X: 1, Y: 1}
	}
}

func (p *TabPanel[K]) barArea(size view.Vec2) view.Vec2 {
	if p.placement.IsHorizontal() {
		return view.Vec2{X: size.X - 2, Y: p.barSize.Y}.Max(view.Vec2{})
	}
	return view.Vec2{X: p.barSize.X, Y: size.Y - 2}.Max(view.Vec2{})
}

func (p *TabPanel[K]) contentArea(size view.Vec2) view.Vec2 {
	if p.placement.IsHorizontal() {
		return view.Vec2{X: size.X - 2, Y: size.Y - p.barSize.Y - 1}.Max(view.Vec2{})
	}
	return view.Vec2{X: size.X - p.barSize.X - 1, Y: size.Y - 2}.Max(view.Vec2{})
}

func (p *TabPanel[K]) Layout(size view.Vec2) {
	p.size = size
	p.bar.Layout(p.barArea(size))
	p.contentSize = p.contentArea(size)
	p.tabs.Layout(p.contentSize)
}

func (p *TabPanel[K]) Draw(pr *view.Printer) {
	p.drawFrame(pr)
	size := pr.Size()
	p.bar.Draw(pr.Sub(p.barOrigin(size), p.barArea(size)).WithFocus(p.barFocused))
	p.tabs.Draw(pr.Sub(p.contentOrigin(), p.contentArea(size)).WithFocus(!p.barFocused))
}

// drawFrame draws the three sides of the box the bar's border line does not
// cover, meeting that line at the corners.
func (p *TabPanel[K]) drawFrame(pr *view.Printer) {
	size := pr.Size()
	if size.X < 2 || size.Y < 2 {
		return
	}
	border := p.theme.Frame.Border
	fr := pr.WithStyle(p.theme.Frame.Style)
	w, h := size.X, size.Y

	box := func(left, top, right, bottom int) {
		fr.PrintHLine(view.Vec2{X: left, Y: top}, right-left+1, border.Top)
		fr.PrintHLine(view.Vec2{X: left, Y: bottom}, right-left+1, border.Bottom)
		fr.PrintVLine(view.Vec2{X: left, Y: top}, bottom-top+1, border.Left)
		fr.PrintVLine(view.Vec2{X: right, Y: top}, bottom-top+1, border.Right)
		fr.Print(view.Vec2{X: left, Y: top}, border.TopLeft)
		fr.Print(view.Vec2{X: right, Y: top}, border.TopRight)
		fr.Print(view.Vec2{X: left, Y: bottom}, border.BottomLeft)
		fr.Print(view.Vec2{X: right, Y: bottom}, border.BottomRight)
	}

	switch p.placement {
	case HorizontalTop:
		box(0, clamp(p.barSize.Y-1, 0, h-1), w-1, h-1)
	case HorizontalBottom:
		box(0, 0, w-1, clamp(h-p.barSize.Y, 0, h-1))
	case VerticalLeft:
		box(clamp(p.barSize.X-1, 0, w-1), 0, w-1, h-1)
	case VerticalRight:
		box(0, 0, clamp(w-p.barSize.X, 0, w-1), h-1)
	}
}

// awayKey moves focus from the bar into the content; enterFrom is the side of
// the content focus then arrives from.
func (p *TabPanel[K]) awayKey() (key view.Key, enterFrom view.Direction) {
	switch p.placement {
	case HorizontalBottom:
		return view.KeyUp, view.DirectionDown
	case VerticalLeft:
		return view.KeyRight, view.DirectionLeft
	case VerticalRight:
		return view.KeyLeft, view.DirectionRight
	default:
		return view.KeyDown, view.DirectionUp
	}
}

// towardKey moves focus from the content back to the bar.
func (p *TabPanel[K]) towardKey() view.Key {
	switch p.placement {
	case HorizontalBottom:
		return view.KeyDown
	case VerticalLeft:
		return view.KeyLeft
	case VerticalRight:
		return view.KeyRight
	default:
		return view.KeyUp
	}
}

func (p *TabPanel[K]) OnEvent(ev view.Event) view.EventResult {
	if ev.Kind == view.EventRefresh {
		p.tabs.OnEvent(ev)
		p.bar.OnEvent(ev)
		return view.Consumed()
	}

	res := p.checkFocusGrab(ev)
	if p.barFocused {
		return res.And(p.onEventBarFocused(ev))
	}
	return res.And(p.onEventContentFocused(ev))
}

func (p *TabPanel[K]) onEventBarFocused(ev view.Event) view.EventResult {
	barOrigin := p.barOrigin(p.size)
	if res := p.bar.OnEvent(ev.Relativized(barOrigin)); res.IsConsumed() {
		return res
	}

	key, enterFrom := p.awayKey()
	if !ev.IsKey(key) {
		return view.Ignored()
	}
	res, err := p.tabs.TakeFocus(enterFrom)
	if err != nil {
		return view.Ignored()
	}
	p.barFocused = false
	return res.And(view.Consumed())
}

func (p *TabPanel[K]) onEventContentFocused(ev view.Event) view.EventResult {
	if res := p.tabs.OnEvent(ev.Relativized(p.contentOrigin())); res.IsConsumed() {
		return res
	}
	if ev.IsKey(p.towardKey()) {
		p.barFocused = true
		return view.Consumed()
	}
	return view.Ignored()
}

// checkFocusGrab moves focus to whichever part a click lands on. Content only
// gets focus if it accepts it.
func (p *TabPanel[K]) checkFocusGrab(ev view.Event) view.EventResult {
	if !ev.GrabsFocus() {
		return view.Ignored()
	}
	pos, ok := ev.RelativePosition()
	if !ok {
		return view.Ignored()
	}

	size := p.size
	if view.NewRect(p.barOrigin(size), p.barArea(size)).Contains(pos) {
		p.barFocused = true
		return view.Ignored()
	}
	if view.NewRect(p.contentOrigin(), p.contentSize).Contains(pos) {
		if res, err := p.tabs.TakeFocus(view.DirectionNone); err == nil {
			p.barFocused = false
			return res
		}
	}
	return view.Ignored()
}

// TakeFocus interprets source against the placement. Focus arriving from the
// bar's edge lands on the bar, focus arriving from the opposite edge tries the
// content first, and focus arriving along the bar stays with the content only
// if the content already had it. The panel always accepts focus since the bar
// can hold it.
func (p *TabPanel[K]) TakeFocus(source view.Direction) (view.EventResult, error) {
	_, barEdge := p.awayKey()

	switch {
	case source == barEdge.Opposite():
		return p.focusContent(source), nil
	case source == barEdge:
		p.barFocused = true
	case source.IsAbsolute() && !p.barFocused:
		return p.focusContent(source), nil
	}
	return view.Consumed(), nil
}

// focusContent falls back to the bar when the content refuses focus.
func (p *TabPanel[K]) focusContent(source view.Direction) view.EventResult {
	res, err := p.tabs.TakeFocus(source)
	if err != nil {
		p.barFocused = true
		return view.Ignored()
	}
	p.barFocused = false
	return res
}

func (p *TabPanel[K]) CallOnAny(sel view.Selector, fn func(view.View)) {
	p.bar.CallOnAny(sel, fn)
	p.tabs.CallOnAny(sel, fn)
}

func (p *TabPanel[K]) FocusView(sel view.Selector) (view.EventResult, error) {
	res, err := p.tabs.FocusView(sel)
	if err != nil {
		return res, err
	}
	p.barFocused = false
	return res, nil
}

func (p *TabPanel[K]) NeedsRelayout() bool {
	return p.bar.NeedsRelayout() || p.tabs.NeedsRelayout()
}

func (p *TabPanel[K]) ImportantArea(size view.Vec2) view.Rect {
	if p.barFocused {
		return p.bar.ImportantArea(p.barArea(size)).Offset(p.barOrigin(size))
	}
	return p.tabs.ImportantArea(p.contentArea(size)).Offset(p.contentOrigin())
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
