// ABOUTME: Package tagedit implements the mail-client style tag editor.
// ABOUTME: State machine only; hosts translate their UI events into calls.

// Package tagedit holds the state of a multi-value tag input: the committed
// tags, the text being typed, the two-stage Backspace delete and type-ahead
// suggestions drawn from a catalog of known tags.
//
// The editor never renders anything. Hosts feed it key, text, focus, blur
// and pointer events and draw the projections it exposes (Pills,
// Suggestions, PopupVisible). Events must be delivered one at a time; the
// only concurrent writer is the catalog refresh started by Reset.
package tagedit
