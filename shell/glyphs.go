package shell

import "strings"

// glyphPlaceholder stands in for a glyph referenced before registration.
const glyphPlaceholder = "▢"

// GlyphRegistry holds named visual primitives referenced from markup as
// {{glyph:name}}. Registration happens as a behavior module's load-time
// side effect; markup inserted before registration would expand to
// placeholders, which is why the sequencer joins on behavior resolution
// before inserting markup.
type GlyphRegistry struct {
	glyphs map[string]string
}

func NewGlyphRegistry() *GlyphRegistry {
	return &GlyphRegistry{glyphs: map[string]string{}}
}

// Register adds or replaces a named glyph.
func (g *GlyphRegistry) Register(name, glyph string) {
	if name == "" {
		return
	}
	g.glyphs[name] = glyph
}

// Lookup returns the rendered glyph for name.
func (g *GlyphRegistry) Lookup(name string) (string, bool) {
	glyph, ok := g.glyphs[name]
	return glyph, ok
}

// expandMarkup substitutes {{glyph:name}} and {{style:name|text}} tokens.
// Unregistered glyphs expand to a placeholder; unregistered styles leave
// their text unstyled. Unterminated tokens pass through verbatim.
func expandMarkup(markup string, glyphs *GlyphRegistry, styles *StyleRegistry) string {
	if !strings.Contains(markup, "{{") {
		return markup
	}
	var b strings.Builder
	b.Grow(len(markup))
	for {
		start := strings.Index(markup, "{{")
		if start < 0 {
			b.WriteString(markup)
			return b.String()
		}
		end := strings.Index(markup[start:], "}}")
		if end < 0 {
			b.WriteString(markup)
			return b.String()
		}
		b.WriteString(markup[:start])
		token := markup[start+2 : start+end]
		markup = markup[start+end+2:]

		switch {
		case strings.HasPrefix(token, "glyph:"):
			name := token[len("glyph:"):]
			if glyph, ok := glyphs.Lookup(name); ok {
				b.WriteString(glyph)
			} else {
				b.WriteString(glyphPlaceholder)
			}
		case strings.HasPrefix(token, "style:"):
			rest := token[len("style:"):]
			name, text, found := strings.Cut(rest, "|")
			if !found {
				b.WriteString(rest)
				continue
			}
			if style, ok := styles.Lookup(name); ok {
				b.WriteString(style.Render(text))
			} else {
				b.WriteString(text)
			}
		default:
			// unknown token kind, drop it rather than leak syntax
		}
	}
}
