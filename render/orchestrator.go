package render

import "github.com/gdamore/tcell/v2"

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen   tcell.Screen
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Resize resynchronises the screen after a terminal size change
func (o *Orchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame executes the pipeline: clear, draw visible layers, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.screen.Clear()

	canvas := NewCanvas(o.screen)
	ctx.Width, ctx.Height = canvas.Size()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.layer.Render(ctx, canvas)
	}

	o.screen.Show()
}
