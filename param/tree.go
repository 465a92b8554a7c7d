package param

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrUnknownParameter is returned for IDs not present in the tree.
	ErrUnknownParameter = errors.New("param: unknown parameter")
	// ErrDuplicateParameter is returned when two parameters share an ID.
	ErrDuplicateParameter = errors.New("param: duplicate parameter id")
)

// Token identifies an observer. The zero Token is never issued and means
// "no originator" when passed to [Tree.SetValue].
type Token uint64

// ObserverFunc is called after a parameter value changed. It runs on the
// goroutine that performed the write.
type ObserverFunc func(id ID, value float64, kind EventKind)

type observer struct {
	fn  ObserverFunc
	ids map[ID]struct{}
}

// Tree is an addressable set of parameters with change observation.
// All methods are safe for concurrent use.
type Tree struct {
	params map[ID]*Parameter
	order  []ID

	mu        sync.RWMutex
	observers map[Token]observer
	next      Token
}

// NewTree builds a tree from params in declaration order.
func NewTree(params ...*Parameter) (*Tree, error) {
	t := &Tree{
		params:    make(map[ID]*Parameter, len(params)),
		observers: make(map[Token]observer),
	}
	for _, p := range params {
		if _, dup := t.params[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d (%s)", ErrDuplicateParameter, p.ID, p.Name)
		}
		t.params[p.ID] = p
		t.order = append(t.order, p.ID)
	}
	return t, nil
}

// Parameter looks up a parameter by ID.
func (t *Tree) Parameter(id ID) (*Parameter, bool) {
	p, ok := t.params[id]
	return p, ok
}

// Parameters returns the parameters in declaration order.
func (t *Tree) Parameters() []*Parameter {
	out := make([]*Parameter, len(t.order))
	for i, id := range t.order {
		out[i] = t.params[id]
	}
	return out
}

// Value returns the current value of id.
func (t *Tree) Value(id ID) (float64, error) {
	p, ok := t.params[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownParameter, id)
	}
	return p.Value(), nil
}

// SetValue clamps v into range, stores it and notifies every observer
// except the one registered under originator.
func (t *Tree) SetValue(id ID, v float64, kind EventKind, originator Token) error {
	p, ok := t.params[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownParameter, id)
	}
	v = p.Clamp(v)
	p.store(v)
	t.notify(id, v, kind, originator)
	return nil
}

// Observe registers fn for changes to ids, or to every parameter when no
// ids are given.
func (t *Tree) Observe(fn ObserverFunc, ids ...ID) Token {
	o := observer{fn: fn}
	if len(ids) > 0 {
		o.ids = make(map[ID]struct{}, len(ids))
		for _, id := range ids {
			o.ids[id] = struct{}{}
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.observers[t.next] = o
	return t.next
}

// RemoveObserver unregisters tok. Unknown tokens are ignored.
func (t *Tree) RemoveObserver(tok Token) {
	t.mu.Lock()
	delete(t.observers, tok)
	t.mu.Unlock()
}

// Format renders v using the formatter of id.
func (t *Tree) Format(id ID, v float64) string {
	p, ok := t.params[id]
	if !ok {
		return ""
	}
	return p.Format(v)
}

// Parse converts user text into a value for id.
func (t *Tree) Parse(id ID, s string) (float64, error) {
	p, ok := t.params[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownParameter, id)
	}
	v, err := p.Parse(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("param: parse %s: %w", p.Name, err)
	}
	return v, nil
}

func (t *Tree) notify(id ID, v float64, kind EventKind, originator Token) {
	t.mu.RLock()
	fns := make([]ObserverFunc, 0, len(t.observers))
	for tok, o := range t.observers {
		if originator != 0 && tok == originator {
			continue
		}
		if o.ids != nil {
			if _, ok := o.ids[id]; !ok {
				continue
			}
		}
		fns = append(fns, o.fn)
	}
	t.mu.RUnlock()

	for _, fn := range fns {
		fn(id, v, kind)
	}
}
