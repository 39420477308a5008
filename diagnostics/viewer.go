// Package diagnostics provides a read-only terminal UI that renders a
// posit's bit layout color-coded by field, the way arm-emulator's
// debugger package renders its TUI panels with gdamore/tcell and
// rivo/tview. It holds no posit arithmetic of its own; it only
// visualizes values produced by the posit package.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adonairc/posit/posit"
)

// Viewer is a single-screen, read-only breakdown of one posit: its bit
// layout by field, its decoded (k, exp, mant) tuple, and its evaluated
// real value.
type Viewer struct {
	App        *tview.Application
	Layout     *tview.Flex
	BitsView   *tview.TextView
	DetailView *tview.TextView
}

// NewViewer builds a Viewer over p.
func NewViewer(p posit.Posit) (*Viewer, error) {
	v := &Viewer{App: tview.NewApplication()}

	v.BitsView = tview.NewTextView().SetDynamicColors(true)
	v.BitsView.SetBorder(true).SetTitle(" Bit layout ")

	v.DetailView = tview.NewTextView().SetDynamicColors(true)
	v.DetailView.SetBorder(true).SetTitle(" Decoded fields ")

	v.Layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.BitsView, 3, 0, false).
		AddItem(v.DetailView, 0, 1, false)

	if err := v.Render(p); err != nil {
		return nil, err
	}

	v.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC || event.Rune() == 'q' {
			v.App.Stop()
			return nil
		}
		return event
	})

	return v, nil
}

// Render redraws both panels for p.
func (v *Viewer) Render(p posit.Posit) error {
	bits, err := p.BitRepr()
	if err != nil {
		return err
	}

	v.BitsView.SetText(FieldString(p, bits))
	v.DetailView.SetText(detailText(p))
	return nil
}

// Run starts the viewer's event loop. It blocks until the user quits
// with 'q' or Ctrl-C.
func (v *Viewer) Run() error {
	return v.App.SetRoot(v.Layout, true).Run()
}

// FieldString renders bits as a color-coded string of 1s and 0s, one
// tview color tag per field: sign in red, regime in yellow, exponent in
// green, mantissa in white. Special posits render as a single
// highlighted word instead of a field breakdown, since they carry no
// regime/exponent/mantissa split.
func FieldString(p posit.Posit, bits uint64) string {
	if p.IsSpecial() {
		if p.Sign == 0 {
			return "[blue::b]zero[-:-:-]"
		}
		return "[red::b]NaR/inf[-:-:-]"
	}

	size := int(p.Size)
	regLen := p.Regime.RegLen()
	esLen := int(p.ES)
	mantLen := p.MantLen()

	var sb strings.Builder
	for i := size - 1; i >= 0; i-- {
		bit := (bits >> uint(i)) & 1

		pos := size - 1 - i
		var color string
		switch {
		case pos == 0:
			color = "red"
		case pos < 1+regLen:
			color = "yellow"
		case pos < 1+regLen+esLen:
			color = "green"
		case pos < 1+regLen+esLen+mantLen:
			color = "white"
		default:
			color = "gray"
		}
		sb.WriteString(fmt.Sprintf("[%s]%d[-]", color, bit))
	}
	return sb.String()
}

func detailText(p posit.Posit) string {
	if p.IsSpecial() {
		return fmt.Sprintf("special (sign=%d)\nvalue: %v", p.Sign, p.Eval())
	}
	return fmt.Sprintf(
		"sign:  %d\nk:     %d\nexp:   %d\nmant:  %d (of %d bits)\nvalue: %v",
		p.Sign, p.Regime.K, p.Exp, p.Mant, p.MantLen(), p.Eval(),
	)
}
