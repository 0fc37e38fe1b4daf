// Package samples holds the demonstration screens. Each screen has one
// stateful owner that keeps its values in a hoisted store and a set of
// stateless units that only receive values and callbacks.
package samples
