// Package progress renders a per-split progress bar on stderr.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar counts processed genomes. The zero value and a nil *Bar are no-ops,
// which is what callers get when progress is disabled.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New starts a bar titled name over total genomes writing to out.
func New(out io.Writer, name string, total int) *Bar {
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))
	title := name + ": "
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(title, decor.WC{W: len(title), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

// Increment marks one genome as done.
func (b *Bar) Increment() {
	if b == nil || b.bar == nil {
		return
	}
	b.bar.Increment()
}

// Wait finishes the bar (aborting it if it did not complete) and blocks
// until it is rendered.
func (b *Bar) Wait() {
	if b == nil || b.p == nil {
		return
	}
	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
}
