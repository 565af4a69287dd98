// Package preview renders a generated level for humans.
//
// ASCII prints one glyph per cell, row by row from the top of the level
// rectangle:
//
//	' ' Empty   '.' Floor   '+' FloorCenter
//	'#' Wall    ':' Path    ',' ExpandedPath
//
// WithColor wraps glyphs in ANSI escapes (github.com/logrusorgru/aurora).
//
// Image and PNG rasterize the same grid with github.com/fogleman/gg, one
// scale×scale square per cell, then overlay the triangulation in grey and
// the carved corridor edges in white between room centers.
//
// Errors:
//   - ErrNilLevel  the level or its grid is nil.
//   - ErrBadScale  scale < 1.
package preview
