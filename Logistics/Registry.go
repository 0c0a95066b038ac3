package Logistics

import (
	"bufio"
	"fmt"
	"io"

	ET "github.com/CristianoRez/Entangled-Threads"
	"github.com/CristianoRez/Entangled-Threads/Arrays/DynArray"
	"github.com/CristianoRez/Entangled-Threads/Dimensions"
	"github.com/CristianoRez/Entangled-Threads/Maps/ProbeMap"
	"github.com/CristianoRez/Entangled-Threads/Queues"
	"github.com/CristianoRez/Entangled-Threads/Sets/HashSet"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"go.uber.org/zap"
)

// PackageDim is the dimension of the package lists.
const PackageDim = "package"

// customerPrefix keeps customer dimensions apart from PackageDim and Dimensions.LifecycleDim whatever the name.
const customerPrefix = "customer:"

const indexDegree = 8

// Sizes are the initial capacities of a Registry. Zero picks the container default.
type Sizes struct {
	Customers uint
	Packages  uint
	Logs      uint
}

// Package is a registered package. Events holds every record of the package in input order.
type Package struct {
	ID        int
	Sender    string
	Recipient string
	Origin    int
	Dest      int
	Events    Dimensions.List
}

// Less orders packages by ID in the summary index.
func (p *Package) Less(than llrb.Item) bool {
	return p.ID < than.(*Package).ID
}

type customer struct {
	name string
	list *Dimensions.List
}

// Registry holds the state of one run. Records carry the index of their log line. Not safe for concurrent use.
type Registry struct {
	customers *ProbeMap.ProbeMap[string, *Dimensions.List]
	packages  *ProbeMap.ProbeMap[int, *Package]
	records   *Dimensions.Arena[int]
	logs      *DynArray.DynArray[string]

	byName *btree.BTreeG[customer]
	byID   *llrb.LLRB

	log *zap.Logger
}

// NewRegistry with room for sz. A nil logger logs nothing.
func NewRegistry(sz Sizes, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		customers: ProbeMap.Make[string, *Dimensions.List](sz.Customers, ET.XXString),
		packages:  ProbeMap.Make[int, *Package](sz.Packages, ET.IntHash[int]),
		records:   Dimensions.NewArena[int](sz.Logs),
		logs:      DynArray.Sized[string](sz.Logs),
		byName:    btree.NewG[customer](indexDegree, func(a, b customer) bool { return a.name < b.name }),
		byID:      llrb.New(),
		log:       logger,
	}
}

// Len is the number of commands applied so far.
func (u *Registry) Len() int {
	return u.logs.Len()
}

// Records is the number of event records alive.
func (u *Registry) Records() int {
	return u.records.Len()
}

// Run applies the commands of q in order, writing query output to w. Rejected events are logged and skipped; any other
// error stops the run.
func (u *Registry) Run(q Queues.Queue[Command], w io.Writer) error {
	bw := bufio.NewWriter(w)
	for c := range q.Drain() {
		if err := u.Apply(c, bw); err != nil {
			if rejected(err) {
				u.log.Warn("event rejected", zap.Stringer("event", c), zap.Error(err))
				continue
			}
			bw.Flush()
			return err
		}
	}
	return bw.Flush()
}

// Apply one command. Its log line is stored even when the command fails, so indexes follow the input.
func (u *Registry) Apply(c Command, w io.Writer) error {
	i := u.logs.Len()
	u.logs.Append(c.String())
	switch c.Kind {
	case CustomerQuery:
		return u.report(w, i, u.CustomerHistory(c.Customer))
	case PackageQuery:
		return u.report(w, i, u.PackageHistory(c.Package))
	case Event:
		if c.Action == Register {
			return u.register(i, c)
		}
		return u.update(i, c)
	}
	return fmt.Errorf("%w: kind %d", ErrUnknownCommand, c.Kind)
}

func (u *Registry) report(w io.Writer, i int, lines []string) error {
	if _, err := fmt.Fprintf(w, "%s\n%d\n", *u.logs.At(i), len(lines)); err != nil {
		return err
	}
	for _, s := range lines {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (u *Registry) register(i int, c Command) error {
	p := &Package{
		ID:        c.Package,
		Sender:    c.Sender,
		Recipient: c.Recipient,
		Origin:    c.Origin,
		Dest:      c.Dest,
		Events:    Dimensions.List{Dim: PackageDim},
	}
	if err := u.packages.Insert(c.Package, p); err != nil {
		return fmt.Errorf("%w: %03d", ErrPackageExists, c.Package)
	}
	u.byID.ReplaceOrInsert(p)
	return u.link(i, p, Dimensions.Nil)
}

func (u *Registry) update(i int, c Command) error {
	p, ok := u.packages.Get(c.Package)
	if !ok {
		return fmt.Errorf("%w: %03d", ErrUnknownPackage, c.Package)
	}
	return u.link(i, p, p.Events.Tail)
}

// link a new record for log line i into the lists of p's customers, superseding old, then into p's own list.
// Every customer list is checked first, so a failed link changes nothing.
func (u *Registry) link(i int, p *Package, old Dimensions.Ref) error {
	prior := p.Events.Size
	parties := HashSet.New[string](2, ET.XXString)
	parties.Put(p.Sender)
	parties.Put(p.Recipient)
	var err error
	parties.Range(func(name string) bool {
		if l, ok := u.customers.Get(name); ok {
			if err = u.records.CheckSupersede(l, old, prior); err != nil {
				err = fmt.Errorf("customer %s, package %03d: %w", name, p.ID, err)
			}
		}
		return err == nil
	})
	if err != nil {
		return err
	}

	rec := u.records.Create(i)
	parties.Range(func(name string) bool {
		l := u.customer(name)
		if err = u.records.Relocate(l, old, rec, prior); err != nil {
			err = fmt.Errorf("customer %s, package %03d: %w", name, p.ID, err)
			return false
		}
		u.log.Debug("relocated",
			zap.String("customer", name),
			zap.Int("package", p.ID),
			zap.Uint32("record", uint32(rec)),
			zap.Uint32("superseded", uint32(old)),
			zap.Int("prior", prior),
			zap.Int("size", l.Size))
		return true
	})
	if err != nil {
		return err
	}
	return u.records.AppendOnly(&p.Events, rec)
}

// customer list of name, created empty on first use.
func (u *Registry) customer(name string) *Dimensions.List {
	l := u.customers.GetOrCreate(name)
	if *l == nil {
		*l = Dimensions.NewList(customerPrefix + name)
		u.byName.ReplaceOrInsert(customer{name: name, list: *l})
	}
	return *l
}

func (u *Registry) lines(l *Dimensions.List) []string {
	out := make([]string, 0, l.Size)
	for r := range u.records.Iterate(l) {
		i, _ := u.records.Item(r)
		out = append(out, *u.logs.At(i))
	}
	return out
}

// CustomerHistory is the log of name's list: the first and the latest event of each package of name, packages in
// order of their latest update. Nil for unknown customers.
func (u *Registry) CustomerHistory(name string) []string {
	l, ok := u.customers.Get(name)
	if !ok {
		return nil
	}
	return u.lines(l)
}

// PackageHistory is the log of every event of package id. Nil for unknown packages.
func (u *Registry) PackageHistory(id int) []string {
	p, ok := u.packages.Get(id)
	if !ok {
		return nil
	}
	return u.lines(&p.Events)
}

// Close releases every record and empties the registry, which can be reused. Returns the number of records released.
func (u *Registry) Close() (int, error) {
	n, err := u.records.Teardown(nil)
	u.customers.Clear()
	u.packages.Clear()
	u.logs.Clear()
	u.byName.Clear(false)
	u.byID = llrb.New()
	if err != nil {
		u.log.Error("teardown", zap.Int("released", n), zap.Error(err))
		return n, err
	}
	u.log.Info("registry closed", zap.Int("released", n))
	return n, nil
}
