package document

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/burntcarrot/stylepad/style"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Document is an append-only sequence of styled characters.
type Document struct {
	mu         sync.RWMutex
	id         uuid.UUID
	characters []Character
	registry   *style.Registry
	logger     logrus.FieldLogger
}

// Character represents a character in the document.
type Character struct {
	// Symbol is the character itself.
	Symbol rune

	// Position is the position the character was inserted at. It is descriptive only:
	// it is not checked for uniqueness, order or bounds.
	Position int

	style *style.Style
}

// NewCharacter returns a character that refers to the given style.
func NewCharacter(symbol rune, position int, s *style.Style) Character {
	return Character{Symbol: symbol, Position: position, style: s}
}

// Style returns the shared style of the character.
func (c Character) Style() *style.Style {
	return c.style
}

// Output receives the characters of a document when it is rendered.
type Output interface {
	RenderCharacter(c Character) error
}

var (
	ErrPositionOutOfBounds = errors.New("position out of bounds")
)

// Option configures a Document.
type Option func(*Document)

// WithRegistry makes the document take its styles from the given registry.
func WithRegistry(r *style.Registry) Option {
	return func(doc *Document) {
		doc.registry = r
	}
}

// WithLogger sets the document's logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(doc *Document) {
		doc.logger = logger
	}
}

// New returns an empty document.
func New(opts ...Option) *Document {
	doc := &Document{id: uuid.New()}
	for _, opt := range opts {
		opt(doc)
	}

	if doc.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		doc.logger = l
	}
	doc.logger = doc.logger.WithField("document", doc.id.String())

	if doc.registry == nil {
		doc.registry = style.NewRegistry(style.WithLogger(doc.logger))
	}

	return doc
}

///////////////
// Operations
///////////////

// Insert appends a character using the default color, underline and alignment.
func (doc *Document) Insert(symbol rune, position int, font string, size int, bold, italic bool) {
	doc.InsertAttributes(symbol, position, style.DefaultAttributes(font, size, bold, italic))
}

// InsertStyled appends a character with a fully specified style.
func (doc *Document) InsertStyled(symbol rune, position int, font string, size int, bold, italic bool,
	color style.Color, underline bool, alignment style.Alignment) {
	doc.InsertAttributes(symbol, position, style.Attributes{
		Font:      font,
		Size:      size,
		Bold:      bold,
		Italic:    italic,
		Color:     color,
		Underline: underline,
		Alignment: alignment,
	})
}

// InsertAttributes appends a character whose style has the given attributes.
func (doc *Document) InsertAttributes(symbol rune, position int, attrs style.Attributes) {
	s := doc.registry.Get(attrs)

	doc.mu.Lock()
	doc.characters = append(doc.characters, NewCharacter(symbol, position, s))
	n := len(doc.characters)
	doc.mu.Unlock()

	doc.logger.WithFields(logrus.Fields{
		"symbol":   string(symbol),
		"position": position,
		"length":   n,
	}).Debug("character inserted")
}

// Render hands every character to out, in insertion order.
// It stops at, and returns, the first error reported by out.
func (doc *Document) Render(out Output) error {
	for _, c := range doc.Characters() {
		if err := out.RenderCharacter(c); err != nil {
			return err
		}
	}
	return nil
}

//////////////////////
// Utility functions
//////////////////////

// ID returns the document's identifier.
func (doc *Document) ID() uuid.UUID {
	return doc.id
}

// Registry returns the registry the document takes its styles from.
func (doc *Document) Registry() *style.Registry {
	return doc.registry
}

// Length returns the number of characters in the document.
func (doc *Document) Length() int {
	doc.mu.RLock()
	defer doc.mu.RUnlock()
	return len(doc.characters)
}

// ElementAt returns the character at the given index of the insertion order.
func (doc *Document) ElementAt(index int) (Character, error) {
	doc.mu.RLock()
	defer doc.mu.RUnlock()

	if index < 0 || index >= len(doc.characters) {
		return Character{}, ErrPositionOutOfBounds
	}

	return doc.characters[index], nil
}

// Characters returns a copy of the document's characters.
func (doc *Document) Characters() []Character {
	doc.mu.RLock()
	defer doc.mu.RUnlock()

	chars := make([]Character, len(doc.characters))
	copy(chars, doc.characters)
	return chars
}

// Content returns the symbols of the document in insertion order.
func (doc *Document) Content() string {
	var b strings.Builder
	for _, c := range doc.Characters() {
		b.WriteRune(c.Symbol)
	}
	return b.String()
}
