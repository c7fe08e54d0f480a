package notes

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// EmptyTitle labels a snapshot with no visible text.
const EmptyTitle = "(empty)"

// MaxTitleRunes is the length at which titles are cut and suffixed with an ellipsis.
const MaxTitleRunes = 40

// Title returns a short label for a markdown snapshot.
// It prefers the first heading, then the first line of the first paragraph,
// then the first non-blank source line.
func Title(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var heading, paragraph string
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading = strings.TrimSpace(firstLine(n, source))
			if heading != "" {
				return ast.WalkStop, nil
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if paragraph == "" {
				paragraph = strings.TrimSpace(firstLine(n, source))
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	title := heading
	if title == "" {
		title = paragraph
	}
	if title == "" {
		title = firstSourceLine(markdown)
	}
	if title == "" {
		return EmptyTitle
	}
	return truncate(title, MaxTitleRunes)
}

// firstLine collects inline text under n up to the first line break.
func firstLine(n ast.Node, source []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				return ast.WalkStop, nil
			}
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if seg, ok := c.(*ast.Text); ok {
					b.Write(seg.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return b.String()
}

func firstSourceLine(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "`~#>-*"))
		if line != "" {
			return line
		}
	}
	return ""
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
