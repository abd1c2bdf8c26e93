package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// notice is the inline status line shown under a view's controls: a
// spinner while a request is running, or a message afterwards
type notice struct {
	label   *widget.Label
	spinner *widget.ProgressBarInfinite
	box     *fyne.Container
}

func newNotice() *notice {
	n := &notice{
		label:   widget.NewLabel(""),
		spinner: widget.NewProgressBarInfinite(),
	}
	n.label.Wrapping = fyne.TextWrapWord
	n.spinner.Hide()
	n.box = container.NewVBox(n.spinner, n.label)
	n.box.Hide()
	return n
}

// busy shows the spinner with msg
func (n *notice) busy(msg string) {
	n.show(msg, widget.MediumImportance, true)
}

// fail shows msg as an error
func (n *notice) fail(msg string) {
	n.show(msg, widget.DangerImportance, false)
}

// info shows msg as a confirmation
func (n *notice) info(msg string) {
	n.show(msg, widget.SuccessImportance, false)
}

// hint shows msg without emphasis
func (n *notice) hint(msg string) {
	n.show(msg, widget.LowImportance, false)
}

func (n *notice) show(msg string, importance widget.Importance, spinning bool) {
	n.label.Importance = importance
	n.label.SetText(msg)
	if spinning {
		n.spinner.Show()
		n.spinner.Start()
	} else {
		n.spinner.Stop()
		n.spinner.Hide()
	}
	n.box.Show()
}

func (n *notice) clear() {
	n.spinner.Stop()
	n.spinner.Hide()
	n.label.SetText("")
	n.box.Hide()
}

// text returns the message currently shown, or "" when hidden
func (n *notice) text() string {
	if !n.box.Visible() {
		return ""
	}
	return n.label.Text
}

// isBusy reports whether the spinner is showing
func (n *notice) isBusy() bool {
	return n.box.Visible() && n.spinner.Visible()
}

func (n *notice) object() fyne.CanvasObject {
	return n.box
}
