// Package glsl implements a standalone tokenizer, symbol classifier, and
// indentation engine for the OpenGL Shading Language. The package covers:
//   - Lexing GLSL source into tokens (identifiers, numbers, operators,
//     punctuation, comments, and preprocessor directives), restartable from
//     any line boundary for incremental re-lexing.
//   - Classifying identifiers against the fixed GLSL vocabulary (types,
//     qualifiers, keywords, reserved words, builtins, and their deprecated
//     variants), with user extensions merged at construction time.
//   - Computing indentation from brace/paren nesting depth and statement
//     continuation rules, and reindenting line ranges of a Document.
//
// The package never paints pixels or touches the file system: callers map
// SymbolCategory values to visual styles and apply the computed line edits
// themselves. Everything is synchronous and single-threaded; a Document is
// owned by its caller.
package glsl
