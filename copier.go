package strata

import "fmt"

// Copier is a filter that replicates mutations to a second store. On put
// or merge it re-reads the current value from source at the recorded
// reference and writes it to target with the same verb; on delete it
// deletes at target; gets replicate nothing. Source and target are
// independent of whatever LoggingStore the filter is attached to.
type Copier struct {
	source, target Storage
}

func NewCopier(source, target Storage) *Copier {
	return &Copier{source: source, target: target}
}

func (c Copier) Apply(op Op) error {
	switch op.Verb {
	case VerbGet:
		return nil
	case VerbPut:
		i, err := c.source.Get(op.Ref)
		if err != nil {
			return err
		}
		return c.target.Put(op.Ref, i)
	case VerbMerge:
		i, err := c.source.Get(op.Ref)
		if err != nil {
			return err
		}
		return c.target.Merge(op.Ref, i)
	case VerbDelete:
		return c.target.Delete(op.Ref)
	default:
		return fmt.Errorf("%w: verb %q", NotSupported, op.Verb)
	}
}
