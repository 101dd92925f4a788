package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec2Arithmetic(t *testing.T) {
	t.Parallel()

	a := NewVec2(3, 5)
	b := NewVec2(4, 2)

	assert.Equal(t, NewVec2(7, 7), a.Add(b))
	assert.Equal(t, NewVec2(-1, 3), a.Sub(b))
	assert.Equal(t, NewVec2(0, 3), a.SaturatingSub(b))
	assert.Equal(t, NewVec2(4, 5), a.Max(b))
	assert.Equal(t, NewVec2(3, 2), a.Min(b))
	assert.Equal(t, NewVec2(7, 5), a.StackHorizontal(b))
	assert.Equal(t, NewVec2(4, 7), a.StackVertical(b))
	assert.Equal(t, NewVec2(3, 0), a.KeepX())
	assert.Equal(t, NewVec2(0, 5), a.KeepY())
	assert.True(t, a.Fits(NewVec2(3, 5)))
	assert.False(t, a.Fits(NewVec2(2, 9)))
	assert.Equal(t, 5, a.Get(Vertical))
	assert.Equal(t, NewVec2(9, 5), a.With(Horizontal, 9))
}

func TestRectContains(t *testing.T) {
	t.Parallel()

	r := NewRect(NewVec2(2, 1), NewVec2(3, 2))

	assert.True(t, r.Contains(NewVec2(2, 1)))
	assert.True(t, r.Contains(NewVec2(4, 2)))
	assert.False(t, r.Contains(NewVec2(5, 2)))
	assert.False(t, r.Contains(NewVec2(2, 3)))
	assert.False(t, r.Contains(NewVec2(1, 1)))
	assert.Equal(t, NewVec2(5, 3), r.BottomRight())
	assert.True(t, NewRect(Vec2{}, NewVec2(0, 4)).Empty())
}

func TestDirectionOpposite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DirectionDown, DirectionUp.Opposite())
	assert.Equal(t, DirectionLeft, DirectionRight.Opposite())
	assert.Equal(t, DirectionBack, DirectionFront.Opposite())
	assert.Equal(t, DirectionNone, DirectionNone.Opposite())
	assert.True(t, DirectionLeft.IsAbsolute())
	assert.False(t, DirectionFront.IsAbsolute())
	assert.Equal(t, "up", DirectionUp.String())
}

func TestEventRelativePosition(t *testing.T) {
	t.Parallel()

	ev := NewMouse(MouseRelease, MouseLeft, NewVec2(5, 4))

	pos, ok := ev.RelativePosition()
	require.True(t, ok)
	assert.Equal(t, NewVec2(5, 4), pos)

	child := ev.Relativized(NewVec2(2, 1)).Relativized(NewVec2(1, 1))
	pos, ok = child.RelativePosition()
	require.True(t, ok)
	assert.Equal(t, NewVec2(2, 2), pos)

	_, ok = ev.Relativized(NewVec2(6, 0)).RelativePosition()
	assert.False(t, ok)

	_, ok = NewKey(KeyEnter).RelativePosition()
	assert.False(t, ok)
}

func TestEventGrabsFocus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"press", NewMouse(MousePress, MouseLeft, Vec2{}), true},
		{"release", NewMouse(MouseRelease, MouseRight, Vec2{}), true},
		{"hold", NewMouse(MouseHold, MouseLeft, Vec2{}), false},
		{"wheel", NewMouse(MousePress, MouseWheelDown, Vec2{}), false},
		{"key", NewKey(KeyEnter), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ev.GrabsFocus())
		})
	}
}

type recordingRunner struct {
	quit  bool
	calls []string
}

func (r *recordingRunner) Quit() { r.quit = true }

func (r *recordingRunner) CallOn(sel Selector, fn func(View)) bool {
	r.calls = append(r.calls, sel.Name)
	return false
}

func (r *recordingRunner) Focus(Selector) error { return nil }

func TestEventResultAnd(t *testing.T) {
	t.Parallel()

	assert.False(t, Ignored().IsConsumed())
	assert.False(t, Ignored().And(Ignored()).IsConsumed())
	assert.True(t, Ignored().And(Consumed()).IsConsumed())
	assert.False(t, ConsumedWith(nil).HasCallback())

	var order []int
	res := ConsumedWith(func(Runner) { order = append(order, 1) }).
		And(ConsumedWith(func(r Runner) {
			order = append(order, 2)
			r.Quit()
		}))
	require.True(t, res.HasCallback())

	run := &recordingRunner{}
	res.Process(run)
	assert.Equal(t, []int{1, 2}, order)
	assert.True(t, run.quit)
}

func TestBaseDefaults(t *testing.T) {
	t.Parallel()

	var b Base
	assert.Equal(t, NewVec2(1, 1), b.RequiredSize(NewVec2(10, 10)))
	assert.False(t, b.OnEvent(NewKey(KeyEnter)).IsConsumed())

	_, err := b.TakeFocus(DirectionNone)
	require.ErrorIs(t, err, ErrCannotFocus)

	_, err = b.FocusView(ByName("x"))
	require.ErrorIs(t, err, ErrViewNotFound)

	assert.Equal(t, RectFromSize(NewVec2(4, 2)), b.ImportantArea(NewVec2(4, 2)))
}

func TestNamedView(t *testing.T) {
	t.Parallel()

	inner := &Base{}
	named := Named("inner", inner)

	var found []View
	named.CallOnAny(ByName("inner"), func(v View) { found = append(found, v) })
	require.Len(t, found, 1)
	assert.Same(t, inner, found[0])

	res, err := named.FocusView(ByName("inner"))
	require.NoError(t, err)
	assert.True(t, res.IsConsumed())

	_, err = named.FocusView(ByName("other"))
	require.ErrorIs(t, err, ErrViewNotFound)
	assert.Equal(t, "inner", named.Name())
}
