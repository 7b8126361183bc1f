package glsl

import "strings"

// SymbolCategory is the semantic bucket an identifier falls into. It is
// derived by vocabulary lookup at classification time, never stored.
type SymbolCategory string

const (
	CategoryType                SymbolCategory = "type"
	CategoryQualifier           SymbolCategory = "qualifier"
	CategoryKeyword             SymbolCategory = "keyword"
	CategoryReserved            SymbolCategory = "reserved"
	CategoryBuiltin             SymbolCategory = "builtin"
	CategoryDeprecatedBuiltin   SymbolCategory = "deprecated-builtin"
	CategoryDeprecatedQualifier SymbolCategory = "deprecated-qualifier"
	CategoryDeprecatedVariable  SymbolCategory = "deprecated-variable"
	CategoryDirective           SymbolCategory = "preprocessor-directive"
	CategoryPreprocessorBuiltin SymbolCategory = "preprocessor-builtin"
	CategoryPlain               SymbolCategory = "plain-identifier"
)

// VocabularyConfig appends user-defined names to the fixed GLSL vocabulary.
// The extension is a pure union applied once when the Classifier is built;
// nothing can be removed from the fixed tables.
type VocabularyConfig struct {
	ExtraTypes      []string
	ExtraQualifiers []string
	ExtraKeywords   []string
	ExtraBuiltins   []string
}

// Classifier maps identifiers to symbol categories. It is immutable after
// construction; resetting the configuration means building a new one.
type Classifier struct {
	types      map[string]struct{}
	qualifiers map[string]struct{}
	keywords   map[string]struct{}
	builtins   map[string]struct{}
}

// NewClassifier builds a Classifier from the fixed vocabulary plus the
// user extensions in cfg. Malformed or duplicate entries are rejected with
// a ConfigError and no Classifier is returned, so the caller's previous
// classifier stays usable.
func NewClassifier(cfg VocabularyConfig) (*Classifier, error) {
	c := &Classifier{}

	extend := func(base map[string]struct{}, extra []string) (map[string]struct{}, error) {
		if len(extra) == 0 {
			return base, nil
		}
		merged := make(map[string]struct{}, len(base)+len(extra))
		for k := range base {
			merged[k] = struct{}{}
		}
		seen := make(map[string]struct{}, len(extra))
		for _, entry := range extra {
			if !isValidIdentifier(entry) {
				return nil, &ConfigError{Entry: entry, Reason: "not a valid GLSL identifier"}
			}
			if _, dup := seen[entry]; dup {
				return nil, &ConfigError{Entry: entry, Reason: "duplicate vocabulary entry"}
			}
			seen[entry] = struct{}{}
			merged[entry] = struct{}{}
		}
		return merged, nil
	}

	var err error
	if c.types, err = extend(glslTypes, cfg.ExtraTypes); err != nil {
		return nil, err
	}
	if c.qualifiers, err = extend(glslQualifiers, cfg.ExtraQualifiers); err != nil {
		return nil, err
	}
	if c.keywords, err = extend(glslKeywords, cfg.ExtraKeywords); err != nil {
		return nil, err
	}
	if c.builtins, err = extend(glslBuiltins, cfg.ExtraBuiltins); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewClassifier is NewClassifier for configurations known to be valid,
// such as the zero config.
func MustNewClassifier(cfg VocabularyConfig) *Classifier {
	c, err := NewClassifier(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify returns the category of an identifier. When a name appears in
// several sets (possible once user extensions are merged), deprecated sets
// win, then reserved, keyword, qualifier, type, and builtin, in that order:
// deprecation warnings must not be shadowed by ordinary highlighting.
func (c *Classifier) Classify(ident string) SymbolCategory {
	if _, ok := glslDeprecatedBuiltins[ident]; ok {
		return CategoryDeprecatedBuiltin
	}
	if _, ok := glslDeprecatedQualifiers[ident]; ok {
		return CategoryDeprecatedQualifier
	}
	if _, ok := glslDeprecatedVariables[ident]; ok {
		return CategoryDeprecatedVariable
	}
	if _, ok := glslReserved[ident]; ok {
		return CategoryReserved
	}
	if _, ok := c.keywords[ident]; ok {
		return CategoryKeyword
	}
	if _, ok := c.qualifiers[ident]; ok {
		return CategoryQualifier
	}
	if _, ok := c.types[ident]; ok {
		return CategoryType
	}
	if _, ok := c.builtins[ident]; ok {
		return CategoryBuiltin
	}
	if _, ok := glslPreprocessorBuiltins[ident]; ok {
		return CategoryPreprocessorBuiltin
	}
	return CategoryPlain
}

// ClassifyToken categorizes a token for highlighting. Identifier tokens go
// through Classify; directive tokens report CategoryDirective; everything
// else is plain.
func (c *Classifier) ClassifyToken(tok Token) SymbolCategory {
	switch tok.Kind {
	case TokenIdent:
		return c.Classify(tok.Text)
	case TokenDirective:
		return CategoryDirective
	default:
		return CategoryPlain
	}
}

// DirectiveName extracts the directive keyword from a directive token's
// text, e.g. "version" from "#version 330 core". It returns "" when the
// token is not a recognized directive.
func DirectiveName(text string) string {
	rest := strings.TrimSpace(text)
	rest = strings.TrimPrefix(rest, "#")
	rest = strings.TrimLeft(rest, " \t")
	end := 0
	for end < len(rest) && isIdentRune(rune(rest[end])) {
		end++
	}
	name := rest[:end]
	if _, ok := glslDirectives[name]; !ok {
		return ""
	}
	return name
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
		} else if !isIdentRune(r) {
			return false
		}
	}
	return true
}
