// Package action implements the composition algebra at the heart of
// reflex: executable actions combined by sequencing, fallback chaining,
// repetition and data binding, executed depth-first against a mapping of
// named trigger values.
//
// Composition never mutates operands. Sequence and Fallback flatten one
// level of series nesting so chained concatenation stays a flat item
// list, Repeat wraps an action with a static or extras-resolved count,
// and Bind layers default data with innermost-wins precedence.
package action
