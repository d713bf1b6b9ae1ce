package content

import (
	"bytes"
	"fmt"

	"github.com/racedirector/racedirector/internal/slug"
)

const DocumentExt = ".md"

// Renderer converts block sequences into markdown documents named after their headline.
type Renderer struct {
	slugs *slug.Generator
}

func NewRenderer(slugs *slug.Generator) *Renderer {
	if slugs == nil {
		slugs = slug.NewGenerator(nil)
	}
	return &Renderer{slugs: slugs}
}

// Render returns the markdown body of blocks and a fresh filename derived from headline.
// The headline itself is kept in post metadata and is not part of the body.
func (r *Renderer) Render(headline string, blocks []Block) ([]byte, string, error) {
	body, err := Body(blocks)
	if err != nil {
		return nil, "", err
	}
	id, err := r.slugs.Generate(headline)
	if err != nil {
		return nil, "", err
	}
	return body, id + DocumentExt, nil
}

// Body renders blocks to markdown. Block text is written as is.
func Body(blocks []Block) ([]byte, error) {
	var buf bytes.Buffer
	for i, b := range blocks {
		switch b.Kind {
		case KindParagraph:
			buf.WriteString(b.Text)
		case KindSubheading:
			buf.WriteString("## ")
			buf.WriteString(b.Text)
		case KindQuote:
			buf.WriteString("> ")
			buf.WriteString(b.Text)
		case KindImage:
			fmt.Fprintf(&buf, "![%s](%s)", b.Caption, b.Src)
			if b.Author != "" {
				fmt.Fprintf(&buf, "\n*%s*", b.Author)
			}
		default:
			return nil, fmt.Errorf("block %d: %w: %q", i, ErrUnknownKind, b.Kind)
		}
		buf.WriteString("\n\n")
	}
	return buf.Bytes(), nil
}
