package content

import "fmt"

// Sequence is an editable, ordered list of blocks. It always holds at least one block.
type Sequence struct {
	blocks []Block
}

func NewSequence(blocks []Block) *Sequence {
	s := &Sequence{blocks: make([]Block, len(blocks))}
	copy(s.blocks, blocks)
	if len(s.blocks) == 0 {
		s.blocks = append(s.blocks, Paragraph(""))
	}
	return s
}

func (s *Sequence) Len() int {
	return len(s.blocks)
}

func (s *Sequence) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

func (s *Sequence) checkPos(pos int) error {
	if pos < 0 || pos >= len(s.blocks) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, pos, len(s.blocks))
	}
	return nil
}

// Newline inserts an empty paragraph right after pos and returns its position.
func (s *Sequence) Newline(pos int) (int, error) {
	if err := s.checkPos(pos); err != nil {
		return pos, err
	}
	s.blocks = append(s.blocks, Block{})
	copy(s.blocks[pos+2:], s.blocks[pos+1:])
	s.blocks[pos+1] = Paragraph("")
	return pos + 1, nil
}

// Backspace removes the block at pos if its text is empty and returns the position that gets focus.
// Blocks holding any text (whitespace included), images and the last remaining block are kept.
func (s *Sequence) Backspace(pos int) (int, error) {
	if err := s.checkPos(pos); err != nil {
		return pos, err
	}
	if !s.blocks[pos].removable() || len(s.blocks) == 1 {
		return pos, nil
	}
	s.blocks = append(s.blocks[:pos], s.blocks[pos+1:]...)
	if pos > 0 {
		return pos - 1, nil
	}
	return 0, nil
}

func (s *Sequence) SetText(pos int, text string) error {
	if err := s.checkPos(pos); err != nil {
		return err
	}
	if s.blocks[pos].Kind == KindImage {
		return ErrNoTextOnImage
	}
	s.blocks[pos].Text = text
	return nil
}

// SetKind switches a text block between paragraph, subheading and quote.
func (s *Sequence) SetKind(pos int, kind Kind) error {
	if err := s.checkPos(pos); err != nil {
		return err
	}
	switch kind {
	case KindParagraph, KindSubheading, KindQuote:
		if s.blocks[pos].Kind == KindImage {
			return ErrNoTextOnImage
		}
		s.blocks[pos].Kind = kind
		return nil
	case KindImage:
		return ErrImageWithoutSrc
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Append adds b at the end and returns its position.
func (s *Sequence) Append(b Block) (int, error) {
	if !b.Kind.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, b.Kind)
	}
	if b.Kind == KindImage && b.Src == "" {
		return 0, ErrImageWithoutSrc
	}
	s.blocks = append(s.blocks, b)
	return len(s.blocks) - 1, nil
}

type EditOp string

const (
	OpNewline   EditOp = "newline"
	OpBackspace EditOp = "backspace"
	OpSetText   EditOp = "set_text"
	OpSetKind   EditOp = "set_kind"
	OpAppend    EditOp = "append"
)

// Edit is a single editor action applied to a Sequence.
type Edit struct {
	Op    EditOp `json:"op"`
	Pos   int    `json:"pos"`
	Text  string `json:"text,omitempty"`
	Kind  Kind   `json:"kind,omitempty"`
	Block *Block `json:"block,omitempty"`
}

// Apply performs e and returns the position that should have focus afterwards.
func (s *Sequence) Apply(e Edit) (int, error) {
	switch e.Op {
	case OpNewline:
		return s.Newline(e.Pos)
	case OpBackspace:
		return s.Backspace(e.Pos)
	case OpSetText:
		return e.Pos, s.SetText(e.Pos, e.Text)
	case OpSetKind:
		return e.Pos, s.SetKind(e.Pos, e.Kind)
	case OpAppend:
		if e.Block == nil {
			return s.Append(Paragraph(e.Text))
		}
		return s.Append(*e.Block)
	default:
		return e.Pos, fmt.Errorf("%w: %q", ErrUnknownEditOp, e.Op)
	}
}
