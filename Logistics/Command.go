package Logistics

import "fmt"

type Kind uint8

const (
	Event Kind = iota
	CustomerQuery
	PackageQuery
)

// Action of an Event.
type Action string

const (
	Register  Action = "RG" // accepted from a sender for a recipient
	Store     Action = "AR" // stored in a warehouse section
	Remove    Action = "RM" // taken out of the section
	Restore   Action = "UR" // put back after a removal
	Transport Action = "TR" // sent from one warehouse to another
	Deliver   Action = "EN" // handed to the recipient
)

// Command is one entry of the input. Only the fields of its Kind and Action are set.
type Command struct {
	Time   int
	Kind   Kind
	Action Action

	Package   int
	Customer  string
	Sender    string
	Recipient string
	Origin    int
	Dest      int
	Section   int
}

// String is the log line of c.
func (c Command) String() string {
	switch c.Kind {
	case CustomerQuery:
		return fmt.Sprintf("%06d CL %s", c.Time, c.Customer)
	case PackageQuery:
		return fmt.Sprintf("%06d PC %03d", c.Time, c.Package)
	}
	switch c.Action {
	case Register:
		return fmt.Sprintf("%07d EV RG %03d %s %s %03d %03d", c.Time, c.Package, c.Sender, c.Recipient, c.Origin, c.Dest)
	case Store, Remove, Restore:
		return fmt.Sprintf("%07d EV %s %03d %03d %03d", c.Time, c.Action, c.Package, c.Dest, c.Section)
	case Transport:
		return fmt.Sprintf("%07d EV TR %03d %03d %03d", c.Time, c.Package, c.Origin, c.Dest)
	case Deliver:
		return fmt.Sprintf("%07d EV EN %03d %03d", c.Time, c.Package, c.Dest)
	}
	return fmt.Sprintf("%07d EV %s %03d", c.Time, c.Action, c.Package)
}
