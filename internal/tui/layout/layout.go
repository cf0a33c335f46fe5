// Package layout stacks page sections into one scrollable document and
// tracks focus across the actions on it.
package layout

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/techconsult/internal/visibility"
)

// Block is one rendered section of a page.
type Block struct {
	ID   string
	View string
}

// Document is the result of stacking blocks: the joined content and where
// each block landed.
type Document struct {
	Content string
	Regions map[string]visibility.Region
	Lines   int
}

// Stack joins blocks top to bottom with gap blank lines between them.
func Stack(blocks []Block, gap int) Document {
	doc := Document{Regions: make(map[string]visibility.Region, len(blocks))}

	parts := make([]string, 0, len(blocks))
	line := 0
	for i, b := range blocks {
		if i > 0 {
			line += gap
		}
		height := lipgloss.Height(b.View)
		doc.Regions[b.ID] = visibility.Region{Top: line, Height: height}
		parts = append(parts, b.View)
		line += height
	}

	doc.Content = strings.Join(parts, strings.Repeat("\n", gap+1))
	doc.Lines = line
	return doc
}

// FocusRing cycles a focus index over n items. Index -1 means nothing is
// focused.
type FocusRing struct {
	index int
	count int
}

// NewFocusRing returns a ring over count items with nothing focused.
func NewFocusRing(count int) FocusRing {
	return FocusRing{index: -1, count: count}
}

// Index returns the focused item or -1.
func (f FocusRing) Index() int {
	return f.index
}

// Focused reports whether i has focus.
func (f FocusRing) Focused(i int) bool {
	return f.index == i
}

// Next moves focus forward, wrapping at the end.
func (f *FocusRing) Next() {
	if f.count == 0 {
		return
	}
	f.index = (f.index + 1) % f.count
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusRing) Prev() {
	if f.count == 0 {
		return
	}
	if f.index <= 0 {
		f.index = f.count - 1
		return
	}
	f.index--
}

// Set focuses i, or clears focus when i is out of range.
func (f *FocusRing) Set(i int) {
	if i < 0 || i >= f.count {
		f.index = -1
		return
	}
	f.index = i
}

// NavKeys are the bindings shared by scrollable pages.
type NavKeys struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Scroll   key.Binding
}

// DefaultNavKeys returns the standard page bindings.
func DefaultNavKeys() NavKeys {
	return NavKeys{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Scroll:   key.NewBinding(key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
	}
}

// Bindings lists the keys for help rendering.
func (k NavKeys) Bindings() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Activate}
}

// ScrollInto returns the y-offset that brings region r into a window of
// height h currently at offset y, moving as little as possible.
func ScrollInto(r visibility.Region, y, h int) int {
	if h <= 0 {
		return y
	}
	if r.Top < y {
		return r.Top
	}
	bottom := r.Top + r.Height
	if bottom > y+h {
		if r.Height > h {
			return r.Top
		}
		return bottom - h
	}
	return y
}
