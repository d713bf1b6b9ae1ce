package content

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxHeadlineLength = 80

var (
	ErrUnknownKind     = errors.New("unknown block kind")
	ErrOutOfRange      = errors.New("block position out of range")
	ErrHeadlineTooLong = fmt.Errorf("headline longer than %d characters", MaxHeadlineLength)
	ErrUnknownEditOp   = errors.New("unknown edit operation")
	ErrNoTextOnImage   = errors.New("image blocks carry no text")
	ErrImageWithoutSrc = errors.New("image block without source")
)

// Kind is the closed set of content block variants.
type Kind string

const (
	KindParagraph  Kind = "paragraph"
	KindSubheading Kind = "subheading"
	KindQuote      Kind = "quote"
	KindImage      Kind = "image"
)

func (k Kind) Valid() bool {
	switch k {
	case KindParagraph, KindSubheading, KindQuote, KindImage:
		return true
	default:
		return false
	}
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind := Kind(text)
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(text))
	}
	*k = kind
	return nil
}

// Block is one unit of post content. Text blocks use Text,
// image blocks use Src with optional Caption and Author.
type Block struct {
	Kind    Kind   `json:"kind"`
	Text    string `json:"text,omitempty"`
	Src     string `json:"src,omitempty"`
	Caption string `json:"caption,omitempty"`
	Author  string `json:"author,omitempty"`
}

func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

func Subheading(text string) Block {
	return Block{Kind: KindSubheading, Text: text}
}

func Quote(text string) Block {
	return Block{Kind: KindQuote, Text: text}
}

func Image(src, caption, author string) Block {
	return Block{Kind: KindImage, Src: src, Caption: caption, Author: author}
}

// IsEmpty reports whether the block carries nothing a reader would see.
func (b Block) IsEmpty() bool {
	return strings.TrimSpace(b.Text) == "" && b.Src == ""
}

// removable reports whether a backspace may drop the block: a text block with no text at all.
func (b Block) removable() bool {
	return b.Kind != KindImage && b.Text == ""
}

// HasContent reports whether at least one block is not empty.
func HasContent(blocks []Block) bool {
	for _, b := range blocks {
		if !b.IsEmpty() {
			return true
		}
	}
	return false
}

// NormalizeHeadline trims and upper-cases a headline, enforcing the length limit.
func NormalizeHeadline(headline string) (string, error) {
	h := strings.ToUpper(strings.TrimSpace(headline))
	if utf8.RuneCountInString(h) > MaxHeadlineLength {
		return "", ErrHeadlineTooLong
	}
	return h, nil
}
