// Package events implements the registration side of the callback/event
// subsystem: a per-module table tracking which event identifiers currently
// have a handler registered.
//
// Each event moves Unregistered -> Registered -> Unregistered. Registering
// an already-registered event overwrites the previous registration —
// registration is idempotent configuration, not a counted resource.
// Unregistering an unregistered event is a no-op. Delivery gives an
// at-least-notify guarantee only: the host may invoke a handler spuriously,
// with no actual readiness, so handlers must re-check readiness through the
// corresponding operation instead of trusting the callback.
package events

import (
	"errors"
	"fmt"
	"sync"

	"tether/internal/contract"
	"tether/internal/schema"
)

// ErrUnknownEvent rejects an event value outside the declared discriminant
// set. The legal runtime values are exactly the enum's discriminants.
var ErrUnknownEvent = errors.New("unknown event identifier")

type registration struct {
	handler contract.Handler
	ctx     contract.Context
}

// Table is the reference registration table for one module's event enum.
//
// Register/Unregister/Registered are serialized by the table lock. Deliver
// snapshots the registration under the lock and invokes the handler outside
// of it, so a handler may re-register or unregister itself; whether
// concurrent deliveries of the same event overlap is the embedding host's
// scheduling decision, not this table's.
type Table struct {
	mu    sync.Mutex
	legal map[uint32]string
	regs  map[uint32]registration
}

// NewTable builds a table whose legal event set is the enum's declared
// discriminants.
func NewTable(ev *schema.Enum) *Table {
	legal := make(map[uint32]string, len(ev.Variants))
	for _, v := range ev.Variants {
		legal[v.Value] = v.Name
	}
	return &Table{
		legal: legal,
		regs:  make(map[uint32]registration),
	}
}

func (t *Table) check(event uint32) error {
	if _, ok := t.legal[event]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEvent, event)
	}
	return nil
}

// Register moves event to Registered, overwriting any prior registration.
// The context is stored verbatim; the table never inspects it.
func (t *Table) Register(event uint32, h contract.Handler, ctx contract.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.check(event); err != nil {
		return err
	}
	t.regs[event] = registration{handler: h, ctx: ctx}
	return nil
}

// Unregister moves event to Unregistered. Calling it while already
// unregistered succeeds as a no-op.
func (t *Table) Unregister(event uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.check(event); err != nil {
		return err
	}
	delete(t.regs, event)
	return nil
}

// Registered reports whether event currently has a handler.
func (t *Table) Registered(event uint32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.regs[event]
	return ok
}

// Deliver invokes the registered handler with its stored context and reports
// whether a handler was invoked. Hosts may call it at any point, including
// spuriously; an unregistered event is silently skipped.
func (t *Table) Deliver(event uint32) bool {
	t.mu.Lock()
	reg, ok := t.regs[event]
	t.mu.Unlock()
	if !ok {
		return false
	}
	reg.handler.Invoke(reg.ctx)
	return true
}
