package cards

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const shellHelp = `commands:
  new                 add an empty card
  title <card> <text> set a card title
  body <card> <text>  set a card body
  save <card>         save a card to the server
  delete <card>       delete a card
  folder              create a folder
  list                show the board
  quit                leave (unsaved cards are lost)
`

// RunShell reads board commands from in, one per line, until EOF, quit or
// ctx is done. Edits stay local; save, delete and new go through Dispatch.
func RunShell(ctx context.Context, in io.Reader, out io.Writer, ctrl *Controller) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if quit := runCommand(ctx, out, ctrl, scanner.Text()); quit {
			return nil
		}
	}
}

func runCommand(ctx context.Context, out io.Writer, ctrl *Controller, line string) bool {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "":
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(out, shellHelp)
	case "new":
		card := ctrl.CreateCard()
		fmt.Fprintf(out, "card %d\n", card.Handle())
	case "folder":
		ctrl.Dispatch(ctx, Event{Action: ActionFolder})
	case "list":
		printBoard(out, ctrl.Board())
	case "title", "body":
		arg, text, _ := strings.Cut(rest, " ")
		card, ok := lookupCard(out, ctrl.Board(), arg)
		if !ok {
			break
		}
		if name == "title" {
			card.SetTitle(text)
		} else {
			card.SetBody(text)
		}
	case "save", "delete":
		card, ok := lookupCard(out, ctrl.Board(), rest)
		if !ok {
			break
		}
		ctrl.Dispatch(ctx, Event{Action: Action(name), Card: card.Handle()})
		if name == "save" {
			fmt.Fprintf(out, "card %d %s\n", card.Handle(), status(card))
		}
	default:
		fmt.Fprintf(out, "unknown command %q, try help\n", name)
	}
	return false
}

func lookupCard(out io.Writer, board *Board, arg string) (*Card, bool) {
	handle, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(out, "invalid card %q\n", arg)
		return nil, false
	}
	card, ok := board.Lookup(handle)
	if !ok {
		fmt.Fprintf(out, "no card %d\n", handle)
	}
	return card, ok
}

func printBoard(out io.Writer, board *Board) {
	cards := board.Cards()
	if len(cards) == 0 {
		fmt.Fprintln(out, "board is empty")
		return
	}
	for _, card := range cards {
		fmt.Fprintf(out, "%d\t%s\t%s\n", card.Handle(), status(card), card.Title())
	}
}

func status(card *Card) string {
	if id := card.RemoteID(); id != "" {
		return "saved:" + id
	}
	return "unsaved"
}
