// Package keymap defines key and gesture bindings for the application.
package keymap

// Binding describes a single binding for the help overlay.
type Binding struct {
	Keys        []string
	Description string
	Context     string // "global" or "panel"
}

// All contains every binding, in help display order.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit", "global"},
	{[]string{"?"}, "Toggle help", "global"},

	// Panel
	{[]string{"space", "enter"}, "Toggle panel (tap)", "panel"},
	{[]string{"click panel"}, "Toggle panel (tap)", "panel"},
	{[]string{"drag panel"}, "Drive the transition", "panel"},
	{[]string{"tap while animating"}, "Reverse in flight", "panel"},
}

// ForContext returns the bindings belonging to a context.
func ForContext(context string) []Binding {
	var out []Binding
	for _, b := range All {
		if b.Context == context {
			out = append(out, b)
		}
	}
	return out
}
