package cli

import (
	"fmt"
	"io"
)

// printNotifier renders store notifications to the terminal. It satisfies
// stores.Notifier.
type printNotifier struct {
	w io.Writer
}

func newPrintNotifier(w io.Writer) *printNotifier {
	return &printNotifier{w: w}
}

func (n *printNotifier) Success(msg string) {
	fmt.Fprintln(n.w, "ok:", msg)
}

func (n *printNotifier) Error(msg string) {
	fmt.Fprintln(n.w, "error:", msg)
}
