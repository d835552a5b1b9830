// Package mirror is the built-in example flow: a single text input whose
// value is echoed into a text node on every edit.
//
// It exists to demonstrate the full sprout contract in the smallest
// possible program — one state field, one message variant, one view.
package mirror
