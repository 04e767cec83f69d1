// Package cli provides the terminal user interface for stitchr.
//
// The counter screen is a [Bubbletea] program styled with [Lipgloss]. It
// follows the usual Model-View-Update shape: input messages are translated
// by an [input.Adapter] into gesture events, the core controller applies
// them to the counter store, and the store pushes the new digit values back
// through the counter.Display port before View runs.
//
// # Screen
//
//	stitchr
//	     rows        stitches
//	  ╭────────╮    ╭────────╮
//	  │  big   │    │  big   │
//	  │ digit  │    │ digit  │
//	  ╰────────╯    ╰────────╯
//	    [ - ]         [ - ]
//
//	      [ reset all ]
//
// Clicking or tapping a digit increments it; the [ - ] buttons decrement and
// a quick second press resets that digit. In touch mode a vertical drag over
// a digit is a swipe.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
