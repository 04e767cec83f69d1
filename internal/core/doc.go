// Package core provides the business logic layer for stitchr.
//
// This package joins the counter store, the gesture classifier and the
// flash feedback into a single [Controller], and loads the application
// configuration. It is free of UI concerns so the terminal UI and the
// one-shot commands share the same behaviour.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Every input event completes its mutation and persistence before
//     [Controller.Handle] returns
//   - UI-specific logic belongs in the cli package, not here
//
// # Event Pipeline
//
//  1. An input adapter produces a gesture.Event
//  2. [Controller.Handle] classifies it into a gesture.Action
//  3. The action mutates the counter store, which saves and re-renders
//  4. The outcome names the element to flash, if any
//
// # Configuration
//
// [LoadConfig] layers model.DefaultConfig, the INI file and STITCHR_*
// environment variables. Invalid values are reported as [*FieldError].
package core
