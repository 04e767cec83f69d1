// Package model defines the data structures shared across stitchr.
//
// # CounterState
//
// The [CounterState] struct is the only persisted record:
//
//	type CounterState struct {
//	    Left  int // row digit, 0..9
//	    Right int // stitch digit, 0..9
//	}
//
// It is owned by the counter package, which enforces the 0..9 range on every
// mutation. Storage backends encode it as JSON under a single fixed key.
//
// # Config
//
// The [Config] struct holds application configuration loaded by the core
// package from the INI file and the environment:
//
//	type Config struct {
//	    Input   InputConfig   // pointer or touch handling, cell height
//	    Gesture GestureConfig // tap and swipe thresholds
//	    Storage StorageConfig // persistence backend and path
//	    Log     LogConfig     // slog level and destination
//	}
package model
