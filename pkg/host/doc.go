// Package host runs view trees inside bubbletea.
//
// A Program translates terminal messages into view events, keeps the tree
// laid out at the terminal size and renders it through a view.Screen. The
// same machinery renders single frames headless with Snapshot and Render,
// which is what the tests and the render command use.
package host
