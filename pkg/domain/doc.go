/*
Package domain defines the core entities of a Chalk presentation: the
Deck (ordered slides), Slide (steps, notes), CodeBlock (annotated
snippets) and the navigation Cursor with its clamped movement rules.

Everything here is authored once and read-only after load; the only
mutable value is the session State, which wraps a Cursor.
*/
package domain
