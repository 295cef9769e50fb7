package vault

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	wikiEmbedRe = regexp.MustCompile(`!\[\[([^\[\]\n]+?)\]\]`)
	codeSpanRe  = regexp.MustCompile("`[^`\n]*`")
)

// Embeds reads a note and returns its embed links. Files that are not
// markdown notes have no embeds.
func (c *Context) Embeds(rel string) ([]string, error) {
	if !NewFile(rel).IsNote() {
		return nil, nil
	}
	data, err := os.ReadFile(c.Abs(rel)) //nolint:gosec // rel was validated against the vault root
	if err != nil {
		return nil, fmt.Errorf("reading note %s: %w", rel, err)
	}
	return ParseEmbeds(data), nil
}

// ParseEmbeds returns the link text of every attachment embed in a markdown
// document: wiki embeds (![[video.mp4]], alias dropped) and image embeds
// (![alt](video.mp4), URL-decoded). Blocks are visited in document order;
// within a block wiki embeds come before image embeds. External URLs and
// anything inside code are ignored.
func ParseEmbeds(source []byte) []string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var links []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			links = append(links, wikiEmbeds(rawLines(n, source))...)
			links = append(links, imageEmbeds(n)...)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}

func rawLines(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

func wikiEmbeds(raw string) []string {
	raw = codeSpanRe.ReplaceAllString(raw, "")
	var links []string
	for _, m := range wikiEmbedRe.FindAllStringSubmatch(raw, -1) {
		target, _, _ := strings.Cut(m[1], "|")
		if target = strings.TrimSpace(target); target != "" {
			links = append(links, target)
		}
	}
	return links
}

func imageEmbeds(block ast.Node) []string {
	var links []string
	_ = ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			if link, ok := imageLink(string(node.Destination)); ok {
				links = append(links, link)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}

func imageLink(dest string) (string, bool) {
	if dest == "" || strings.Contains(dest, "://") || strings.HasPrefix(dest, "data:") {
		return "", false
	}
	if decoded, err := url.PathUnescape(dest); err == nil {
		dest = decoded
	}
	return dest, true
}
