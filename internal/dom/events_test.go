package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementEvents(t *testing.T) {
	doc := mustLoad(t, `<div/>`)
	el := doc.Root()

	var calls []string
	removeA := el.AddEventListener("mouseover", func() { calls = append(calls, "a") })
	el.AddEventListener("mouseover", func() { calls = append(calls, "b") })
	el.AddEventListener("mouseout", func() { calls = append(calls, "out") })

	assert.Equal(t, 2, el.Dispatch("mouseover"))
	assert.Equal(t, []string{"a", "b"}, calls)

	removeA()
	removeA()
	calls = nil
	assert.Equal(t, 1, el.Dispatch("mouseover"))
	assert.Equal(t, []string{"b"}, calls)
	assert.Equal(t, 1, el.ListenerCount("mouseout"))
	assert.Equal(t, 0, el.Dispatch("click"))
}

func TestRemoveDuringDispatch(t *testing.T) {
	w := NewWindow(800)

	runs := 0
	var remove func()
	remove = w.AddEventListener("resize", func() {
		runs++
		remove()
	})

	assert.Equal(t, 1, w.Resize(900))
	assert.Equal(t, 0, w.Resize(1000))
	assert.Equal(t, 1, runs)
	assert.InDelta(t, 1000, w.Width(), 0)
}
