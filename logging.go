package strata

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Verb names the contract operation recorded in an Op.
type Verb string

const (
	VerbGet    Verb = "get"
	VerbPut    Verb = "put"
	VerbMerge  Verb = "merge"
	VerbDelete Verb = "delete"
)

// Op is the reified record of a single contract call. Records are built
// once per call, handed to exactly one filter, and discarded.
type Op struct {
	ID   string
	Verb Verb
	Ref  Ref
	Time time.Time
}

func newOp(verb Verb, r Ref) Op {
	return Op{
		ID:   uuid.New().String(),
		Verb: verb,
		Ref:  r,
		Time: time.Now().UTC(),
	}
}

// Filter consumes one Op per contract call. Its return value is the only
// thing that survives the call: a failing filter fails the operation.
type Filter interface {
	Apply(Op) error
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(Op) error

func (f FilterFunc) Apply(op Op) error {
	return f(op)
}

// LoggingStore runs every operation against its target and then feeds an
// Op record synchronously to the filter. Logging is not best-effort:
// filter failures propagate to the original caller.
type LoggingStore struct {
	target Storage
	filter Filter
}

func NewLoggingStore(target Storage, filter Filter) *LoggingStore {
	return &LoggingStore{target: target, filter: filter}
}

func (ls LoggingStore) Get(r Ref) (interface{}, error) {
	i, err := ls.target.Get(r)
	if err != nil {
		return nil, err
	}
	if err := ls.filter.Apply(newOp(VerbGet, r)); err != nil {
		return nil, err
	}
	return i, nil
}

func (ls LoggingStore) update(r Ref, i interface{}, verb Verb, mutator func(Ref, interface{}) error) error {
	if err := mutator(r, i); err != nil {
		return err
	}
	return ls.filter.Apply(newOp(verb, r))
}

func (ls LoggingStore) Put(r Ref, i interface{}) error {
	return ls.update(r, i, VerbPut, ls.target.Put)
}

func (ls LoggingStore) Merge(r Ref, i interface{}) error {
	return ls.update(r, i, VerbMerge, ls.target.Merge)
}

func (ls LoggingStore) Delete(r Ref) error {
	return ls.update(r, nil, VerbDelete, func(r Ref, _ interface{}) error {
		return ls.target.Delete(r)
	})
}

// NewPrintFilter renders each record as one human-readable line on w.
func NewPrintFilter(w io.Writer) Filter {
	return FilterFunc(func(op Op) error {
		fmt.Fprintf(w, "%s %s %s %s\n", op.Time.Format(time.RFC3339Nano), op.ID, op.Verb, op.Ref)
		return nil
	})
}

// NewZapFilter emits each record as a structured log entry.
func NewZapFilter(l *zap.Logger) Filter {
	return FilterFunc(func(op Op) error {
		l.Info("storage op",
			zap.String("id", op.ID),
			zap.String("verb", string(op.Verb)),
			zap.Stringer("ref", op.Ref),
			zap.Time("at", op.Time),
		)
		return nil
	})
}
