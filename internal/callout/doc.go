// Package callout rewrites :::type fenced custom blocks of a markdown document
// into HTML wrappers before the document reaches a markdown compiler.
//
// A block opens with a line ":::TYPE [title]" where TYPE is one of note, tip,
// info, warning, danger or highlight, and closes at the next line that is
// exactly ":::". Trailing whitespace is ignored on both fences, leading
// whitespace is not. Blocks do not nest.
package callout
