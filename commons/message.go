package commons

import (
	"github.com/burntcarrot/stylepad/document"
	"github.com/google/uuid"
)

// Message represents the message sent over the wire.
type Message struct {
	// Type represents the message type.
	Type MessageType `json:"type"`

	// ID represents the client's UUID.
	ID uuid.UUID `json:"ID"`

	// DocumentID identifies the document the message is about.
	DocumentID uuid.UUID `json:"documentID,omitempty"`

	// Text carries the rendered document for docSync messages, the number of viewers for
	// join messages and the reason for error messages.
	Text string `json:"text,omitempty"`

	// Operation represents an insert requested by a client.
	Operation Operation `json:"operation"`

	// Entries lists the characters of the document, in insertion order. Only set on docSync.
	Entries []Entry `json:"entries,omitempty"`
}

// MessageType represents the type of the message.
type MessageType string

// Currently, stylepad supports 5 message types:
// - docSync (the server's copy of the document)
// - docReq (for requesting the document)
// - insert (for appending a character)
// - join (for announcing a new viewer)
// - error (for rejected requests)

const (
	DocSyncMessage MessageType = "docSync"
	DocReqMessage  MessageType = "docReq"
	InsertMessage  MessageType = "insert"
	JoinMessage    MessageType = "join"
	ErrorMessage   MessageType = "error"
)

// Entry is a character of the document together with its style.
type Entry struct {
	Symbol    string `json:"symbol"`
	Position  int    `json:"position"`
	Font      string `json:"font"`
	Size      int    `json:"size"`
	Bold      bool   `json:"bold"`
	Italic    bool   `json:"italic"`
	Color     string `json:"color"`
	Underline bool   `json:"underline"`
	Alignment string `json:"alignment"`
}

// Entries converts the characters of a document into wire entries.
func Entries(doc *document.Document) []Entry {
	chars := doc.Characters()
	entries := make([]Entry, 0, len(chars))

	for _, c := range chars {
		s := c.Style()
		entries = append(entries, Entry{
			Symbol:    string(c.Symbol),
			Position:  c.Position,
			Font:      s.Font(),
			Size:      s.Size(),
			Bold:      s.Bold(),
			Italic:    s.Italic(),
			Color:     s.Color().String(),
			Underline: s.Underline(),
			Alignment: s.Alignment().String(),
		})
	}

	return entries
}
