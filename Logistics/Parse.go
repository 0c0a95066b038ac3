package Logistics

import (
	"bufio"
	"io"
	"strconv"

	"github.com/CristianoRez/Entangled-Threads/Queues"
)

const queueSize = 64

type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokens) word() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", &ParseError{Pos: t.pos + 1, Err: io.ErrUnexpectedEOF}
	}
	t.pos++
	return t.sc.Text(), nil
}

func (t *tokens) number() (int, error) {
	s, err := t.word()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Token: s, Pos: t.pos, Err: err}
	}
	return n, nil
}

func (t *tokens) ints(dst ...*int) error {
	for _, p := range dst {
		n, err := t.number()
		if err != nil {
			return err
		}
		*p = n
	}
	return nil
}

// Parse reads whitespace separated commands until r is exhausted and queues them in input order.
// Nothing is queued when the input is malformed: the error is a *ParseError, or the read error of r.
func Parse(r io.Reader) (Queues.Queue[Command], error) {
	t := &tokens{sc: bufio.NewScanner(r)}
	t.sc.Split(bufio.ScanWords)
	q := Queues.MakeArrayQueue[Command](queueSize)
	for t.sc.Scan() {
		t.pos++
		var c Command
		var err error
		if c.Time, err = strconv.Atoi(t.sc.Text()); err != nil {
			return nil, &ParseError{Token: t.sc.Text(), Pos: t.pos, Err: err}
		}
		if err = t.command(&c); err != nil {
			return nil, err
		}
		q.Push(c)
	}
	if err := t.sc.Err(); err != nil {
		return nil, err
	}
	return q, nil
}

// command reads what follows the time of c.
func (t *tokens) command(c *Command) error {
	kind, err := t.word()
	if err != nil {
		return err
	}
	switch kind {
	case "CL":
		c.Kind = CustomerQuery
		c.Customer, err = t.word()
		return err
	case "PC":
		c.Kind = PackageQuery
		return t.ints(&c.Package)
	case "EV":
		c.Kind = Event
	default:
		return &ParseError{Token: kind, Pos: t.pos, Err: ErrUnknownCommand}
	}

	action, err := t.word()
	if err != nil {
		return err
	}
	c.Action = Action(action)
	switch c.Action {
	case Register:
		if err = t.ints(&c.Package); err != nil {
			return err
		}
		if c.Sender, err = t.word(); err != nil {
			return err
		}
		if c.Recipient, err = t.word(); err != nil {
			return err
		}
		return t.ints(&c.Origin, &c.Dest)
	case Store, Remove, Restore:
		return t.ints(&c.Package, &c.Dest, &c.Section)
	case Transport:
		return t.ints(&c.Package, &c.Origin, &c.Dest)
	case Deliver:
		return t.ints(&c.Package, &c.Dest)
	}
	return &ParseError{Token: action, Pos: t.pos, Err: ErrUnknownCommand}
}
