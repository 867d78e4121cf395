package cards

import (
	"context"
	"log/slog"
)

// NotesAPI is the remote side of a card.
type NotesAPI interface {
	Create(ctx context.Context, title, body string) (string, error)
	Update(ctx context.Context, id, title, body string) error
	Delete(ctx context.Context, id string) error
}

type Action string

const (
	ActionCreate Action = "create"
	ActionSave   Action = "save"
	ActionDelete Action = "delete"
	ActionFolder Action = "folder"
)

// Event is a user action on the board. Card is ignored by create and folder.
type Event struct {
	Action Action
	Card   int
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller binds board events to notes API calls. Network failures are
// logged and never surfaced to the caller.
//
// Saves are not serialized: two saves of the same unsaved card that overlap
// will both create a remote note.
type Controller struct {
	board  *Board
	api    NotesAPI
	logger *slog.Logger

	handlers map[Action]func(context.Context, *Card)
}

func NewController(board *Board, api NotesAPI, opts ...Option) *Controller {
	c := &Controller{
		board:  board,
		api:    api,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.handlers = map[Action]func(context.Context, *Card){
		ActionSave:   c.SaveCard,
		ActionDelete: c.DeleteCard,
	}
	return c
}

func (c *Controller) Board() *Board { return c.board }

// CreateCard puts a new empty card on the board. It does not touch the API.
func (c *Controller) CreateCard() *Card {
	card := c.board.Insert()
	c.logger.Debug("card created", "card", card.Handle())
	return card
}

// SaveCard creates the remote note on first save and updates it afterwards.
func (c *Controller) SaveCard(ctx context.Context, card *Card) {
	title, body := card.contents()
	remoteID := card.RemoteID()
	log := c.logger.With("card", card.Handle())

	if remoteID == "" {
		log.Debug("creating note", "title", title)
		id, err := c.api.Create(ctx, title, body)
		if err != nil {
			log.Error("error saving note", "error", err)
			return
		}
		card.setRemoteID(id)
		log.Info("note created", "id", id)
		return
	}

	log.Debug("updating note", "id", remoteID)
	if err := c.api.Update(ctx, remoteID, title, body); err != nil {
		log.Error("error saving note", "id", remoteID, "error", err)
		return
	}
	log.Info("note updated", "id", remoteID)
}

// DeleteCard removes the remote note if there is one, then always removes the
// card from the board.
func (c *Controller) DeleteCard(ctx context.Context, card *Card) {
	log := c.logger.With("card", card.Handle())
	if id := card.RemoteID(); id != "" {
		if err := c.api.Delete(ctx, id); err != nil {
			log.Error("error deleting note", "id", id, "error", err)
		} else {
			log.Info("note deleted", "id", id)
		}
	}
	c.board.Remove(card)
}

// CreateFolder is a placeholder; folders are not grouped client side yet.
func (c *Controller) CreateFolder() {
	c.logger.Info("folder created")
}

// Dispatch routes an event to its handler. Unknown actions and cards that are
// no longer on the board are logged and dropped.
func (c *Controller) Dispatch(ctx context.Context, ev Event) {
	switch ev.Action {
	case ActionCreate:
		c.CreateCard()
		return
	case ActionFolder:
		c.CreateFolder()
		return
	}

	handler, ok := c.handlers[ev.Action]
	if !ok {
		c.logger.Warn("unknown action", "action", ev.Action)
		return
	}
	card, ok := c.board.Lookup(ev.Card)
	if !ok {
		c.logger.Warn("no such card", "action", ev.Action, "card", ev.Card)
		return
	}
	handler(ctx, card)
}
