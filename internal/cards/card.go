// Package cards keeps editable note cards in sync with the notes API.
//
// A card is created locally and only gains a remote identifier after its
// first successful save. Whether that identifier is present decides if a
// save creates or updates the remote note.
package cards

import (
	"strings"
	"sync"
)

// Card is one editable note on a Board.
type Card struct {
	handle int

	mu       sync.Mutex
	title    string
	body     string
	remoteID string
}

// Handle addresses the card within its board.
func (c *Card) Handle() int { return c.handle }

func (c *Card) SetTitle(title string) {
	c.mu.Lock()
	c.title = title
	c.mu.Unlock()
}

func (c *Card) SetBody(body string) {
	c.mu.Lock()
	c.body = body
	c.mu.Unlock()
}

func (c *Card) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

func (c *Card) Body() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.body
}

// RemoteID is empty until the card has been created on the server.
func (c *Card) RemoteID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remoteID
}

// Saved reports whether the card carries a remote identifier.
func (c *Card) Saved() bool {
	return c.RemoteID() != ""
}

// contents returns the trimmed title and body as they would be sent.
func (c *Card) contents() (title, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.TrimSpace(c.title), strings.TrimSpace(c.body)
}

func (c *Card) setRemoteID(id string) {
	c.mu.Lock()
	c.remoteID = id
	c.mu.Unlock()
}

// Board is the ordered container cards live in. Nothing on a board survives
// the process.
type Board struct {
	mu    sync.Mutex
	next  int
	cards []*Card
}

func NewBoard() *Board {
	return &Board{next: 1}
}

// Insert appends a new empty card.
func (b *Board) Insert() *Card {
	b.mu.Lock()
	defer b.mu.Unlock()
	card := &Card{handle: b.next}
	b.next++
	b.cards = append(b.cards, card)
	return card
}

// Remove drops card from the board. It reports false if the card was not on it.
func (b *Board) Remove(card *Card) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.cards {
		if c == card {
			b.cards = append(b.cards[:i], b.cards[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Board) Lookup(handle int) (*Card, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.cards {
		if c.handle == handle {
			return c, true
		}
	}
	return nil, false
}

// Cards returns a snapshot in insertion order.
func (b *Board) Cards() []*Card {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Card, len(b.cards))
	copy(out, b.cards)
	return out
}

func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cards)
}
