// Package docs turns specification prose into Go doc comments.
//
// Descriptions and examples are copied verbatim; only line breaks change.
// Paragraphs are re-wrapped to a fixed width, example snippets become
// indented code blocks and the documentation URL is appended as a
// "See:" line.
package docs

import (
	"strings"

	"cfn-binding-generator/internal/schema"
)

// DefaultWidth is the wrap width of comment text, excluding the "// " prefix.
const DefaultWidth = 76

// Doc is the documentation of one generated identifier.
type Doc struct {
	// Lead is the first sentence, normally starting with the identifier.
	Lead        string
	Description string
	Examples    []string
	URL         string
	// Notes are short single-line facts such as "Required." or update behavior.
	Notes []string
}

// ForProperty builds the documentation of an Args field.
func ForProperty(p *schema.Property) Doc {
	d := Doc{
		Description: p.Description,
		Examples:    p.Examples,
		URL:         p.Documentation,
	}

	if p.Required {
		d.Notes = append(d.Notes, "Required.")
	}

	if p.UpdateType != "" {
		d.Notes = append(d.Notes, "Update requires: "+updateNote(p.UpdateType))
	}

	if p.Default != "" && !p.Required {
		d.Notes = append(d.Notes, "Default: "+p.Default)
	}

	return d
}

// ForResource builds the documentation of a resource wrapper.
func ForResource(lead string, r *schema.ResourceType) Doc {
	return Doc{
		Lead:        lead,
		Description: r.Description,
		Examples:    r.Examples,
		URL:         r.Documentation,
	}
}

// ForStructure builds the documentation of a structure type.
func ForStructure(lead string, pt *schema.PropertyType) Doc {
	return Doc{
		Lead:        lead,
		Description: pt.Description,
		Examples:    pt.Examples,
		URL:         pt.Documentation,
	}
}

func updateNote(u schema.UpdateType) string {
	switch u {
	case schema.Mutable:
		return "No interruption"
	case schema.Immutable:
		return "Replacement"
	case schema.Conditional:
		return "Some interruptions"
	default:
		return string(u)
	}
}

// Lines returns the comment text lines of d without comment markers. An
// empty string separates paragraphs.
func (d Doc) Lines(width int) []string {
	var blocks [][]string

	if d.Lead != "" {
		blocks = append(blocks, Wrap(d.Lead, width))
	}

	for _, para := range paragraphs(d.Description) {
		blocks = append(blocks, Wrap(para, width))
	}

	if len(d.Notes) > 0 {
		blocks = append(blocks, d.Notes)
	}

	for _, ex := range d.Examples {
		var code []string
		for _, l := range strings.Split(strings.TrimRight(ex, "\n"), "\n") {
			code = append(code, "\t"+l)
		}

		blocks = append(blocks, append([]string{"Example:", ""}, code...))
	}

	if d.URL != "" {
		blocks = append(blocks, []string{"See: " + d.URL})
	}

	var out []string

	for i, b := range blocks {
		if i > 0 {
			out = append(out, "")
		}

		out = append(out, b...)
	}

	return out
}

// Comment renders d as a // comment block, each line prefixed by indent.
func (d Doc) Comment(indent string) string {
	lines := d.Lines(DefaultWidth)
	if len(lines) == 0 {
		return ""
	}

	var sb strings.Builder

	for _, l := range lines {
		sb.WriteString(indent)

		switch {
		case l == "":
			sb.WriteString("//")
		case strings.HasPrefix(l, "\t"):
			sb.WriteString("//")
			sb.WriteString(l)
		default:
			sb.WriteString("// ")
			sb.WriteString(l)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// Wrap breaks text into lines of at most width runes. Words longer than
// width, such as URLs, are kept whole.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		cur   strings.Builder
	)

	for _, w := range words {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}

		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}

		cur.WriteString(w)
	}

	return append(lines, cur.String())
}

func paragraphs(text string) []string {
	var out []string

	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
