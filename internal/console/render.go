package console

import (
	"fmt"
	"io"

	"github.com/nlterm/nlterm/internal/executor"
)

// Renderer prints outcomes one line at a time.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

// Render prints every line of out in its tone.
func (r *Renderer) Render(out executor.Outcome) {
	for _, l := range out.Lines {
		fmt.Fprintln(r.w, Paint(l.Tone, l.Text, r.color))
	}
}

// Color reports whether the renderer emits escape sequences.
func (r *Renderer) Color() bool {
	return r.color
}
