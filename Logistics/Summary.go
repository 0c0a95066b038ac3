package Logistics

import (
	"fmt"
	"io"

	"github.com/petar/GoLLRB/llrb"
)

type CustomerSummary struct {
	Name    string
	Entries int
}

type PackageSummary struct {
	ID        int
	Sender    string
	Recipient string
	Events    int
}

// Summary of a registry: customers by name, packages by ID.
type Summary struct {
	Customers []CustomerSummary
	Packages  []PackageSummary
}

func (u *Registry) Summary() Summary {
	s := Summary{
		Customers: make([]CustomerSummary, 0, u.byName.Len()),
		Packages:  make([]PackageSummary, 0, u.byID.Len()),
	}
	u.byName.Ascend(func(c customer) bool {
		s.Customers = append(s.Customers, CustomerSummary{Name: c.name, Entries: c.list.Size})
		return true
	})
	if first := u.byID.Min(); first != nil {
		u.byID.AscendGreaterOrEqual(first, func(i llrb.Item) bool {
			p := i.(*Package)
			s.Packages = append(s.Packages, PackageSummary{ID: p.ID, Sender: p.Sender, Recipient: p.Recipient, Events: p.Events.Size})
			return true
		})
	}
	return s
}

// WriteTo writes one line per customer then one line per package.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range s.Customers {
		n, err := fmt.Fprintf(w, "customer %s %d\n", c.Name, c.Entries)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, p := range s.Packages {
		n, err := fmt.Fprintf(w, "package %03d %s %s %d\n", p.ID, p.Sender, p.Recipient, p.Events)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
