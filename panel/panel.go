// Package panel provides a keyboard-driven tweak panel. Bindings point at
// live values (shader uniform slots, camera fields) and clamp every write
// to the declared range, so the render loop always reads a valid value.
package panel

import "fmt"

// Binding is one adjustable entry in a panel.
type Binding interface {
	// Label is the name shown for the entry.
	Label() string
	// Adjust moves the value by the given number of steps.
	Adjust(steps int)
	// Describe formats the entry for the panel readout.
	Describe() string
}

// FloatBinding adjusts a single float32 in fixed steps within [Min, Max].
type FloatBinding struct {
	Name   string
	Target *float32
	Min    float32
	Max    float32
	Step   float32
}

func (b *FloatBinding) Label() string { return b.Name }

// Set writes a clamped value. The range boundaries are hit exactly, never
// overshot by a partial step.
func (b *FloatBinding) Set(v float32) {
	if v < b.Min {
		v = b.Min
	}
	if v > b.Max {
		v = b.Max
	}
	*b.Target = v
}

func (b *FloatBinding) Adjust(steps int) {
	b.Set(*b.Target + float32(steps)*b.Step)
}

func (b *FloatBinding) Describe() string {
	return fmt.Sprintf("%s = %.3f  [%.2f .. %.2f]", b.Name, *b.Target, b.Min, b.Max)
}

// ColorBinding adjusts one channel of a live RGB color. Channels clamp
// to [0, 1] independently.
type ColorBinding struct {
	Name    string
	Target  *float32
	Channel string
	Step    float32
}

func (b *ColorBinding) Label() string { return b.Name + "." + b.Channel }

func (b *ColorBinding) Set(v float32) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	*b.Target = v
}

func (b *ColorBinding) Adjust(steps int) {
	b.Set(*b.Target + float32(steps)*b.Step)
}

func (b *ColorBinding) Describe() string {
	return fmt.Sprintf("%s.%s = %.2f", b.Name, b.Channel, *b.Target)
}

// Panel is an ordered list of bindings with one selected entry.
type Panel struct {
	Title    string
	bindings []Binding
	selected int
}

func New(title string) *Panel {
	return &Panel{Title: title}
}

// AddFloat registers a float binding and returns it for direct use.
func (p *Panel) AddFloat(name string, target *float32, min, max, step float32) *FloatBinding {
	b := &FloatBinding{Name: name, Target: target, Min: min, Max: max, Step: step}
	p.bindings = append(p.bindings, b)
	return b
}

// AddColor registers per-channel bindings for a live RGB color. The three
// pointers address the channels of the same color value.
func (p *Panel) AddColor(name string, r, g, b *float32, step float32) {
	p.bindings = append(p.bindings,
		&ColorBinding{Name: name, Target: r, Channel: "r", Step: step},
		&ColorBinding{Name: name, Target: g, Channel: "g", Step: step},
		&ColorBinding{Name: name, Target: b, Channel: "b", Step: step},
	)
}

func (p *Panel) Len() int { return len(p.bindings) }

// Next moves the selection down, wrapping at the end.
func (p *Panel) Next() {
	if len(p.bindings) > 0 {
		p.selected = (p.selected + 1) % len(p.bindings)
	}
}

// Prev moves the selection up, wrapping at the start.
func (p *Panel) Prev() {
	if len(p.bindings) > 0 {
		p.selected = (p.selected + len(p.bindings) - 1) % len(p.bindings)
	}
}

// Selected returns the current binding, or nil for an empty panel.
func (p *Panel) Selected() Binding {
	if len(p.bindings) == 0 {
		return nil
	}
	return p.bindings[p.selected]
}

// Adjust applies steps to the selected binding.
func (p *Panel) Adjust(steps int) {
	if b := p.Selected(); b != nil {
		b.Adjust(steps)
	}
}

// Describe formats the selected entry with its position for a title bar
// or log line.
func (p *Panel) Describe() string {
	b := p.Selected()
	if b == nil {
		return p.Title
	}
	return fmt.Sprintf("%s  (%d/%d) %s", p.Title, p.selected+1, len(p.bindings), b.Describe())
}
