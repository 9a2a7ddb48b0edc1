package events_test

import (
	"errors"
	"testing"

	"tether/internal/api"
	"tether/internal/contract"
	"tether/internal/events"
)

func newSerialTable(t *testing.T) *events.Table {
	t.Helper()
	ev := api.SerialEvents()
	if ev == nil {
		t.Fatal("usb.serial has no Event enum")
	}
	return events.NewTable(ev)
}

func countingHandler(n *int) contract.Handler {
	return contract.HandlerFunc(func(contract.Context) { *n++ })
}

func TestTable_RegisterUnregister(t *testing.T) {
	tbl := newSerialTable(t)
	var calls int

	if err := tbl.Register(api.SerialEventRead, countingHandler(&calls), 7); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !tbl.Registered(api.SerialEventRead) {
		t.Fatal("event should be registered")
	}
	if err := tbl.Unregister(api.SerialEventRead); err != nil {
		t.Fatalf("unregister failed: %v", err)
	}
	if tbl.Registered(api.SerialEventRead) {
		t.Fatal("event should be unregistered")
	}
	// Idempotent: unregistering again succeeds as a no-op.
	if err := tbl.Unregister(api.SerialEventRead); err != nil {
		t.Fatalf("second unregister must be a no-op: %v", err)
	}
}

func TestTable_RegisterOverwrites(t *testing.T) {
	tbl := newSerialTable(t)
	var first, second int

	if err := tbl.Register(api.SerialEventWrite, countingHandler(&first), 1); err != nil {
		t.Fatal(err)
	}
	if err := tbl.Register(api.SerialEventWrite, countingHandler(&second), 2); err != nil {
		t.Fatalf("re-register must overwrite, not fail: %v", err)
	}
	tbl.Deliver(api.SerialEventWrite)
	if first != 0 || second != 1 {
		t.Fatalf("delivery reached handlers (first=%d, second=%d), want only the newest", first, second)
	}
}

func TestTable_UnknownEvent(t *testing.T) {
	tbl := newSerialTable(t)
	// The legal event set is exactly the declared discriminants {0, 1}.
	if err := tbl.Register(99, countingHandler(new(int)), 0); !errors.Is(err, events.ErrUnknownEvent) {
		t.Fatalf("register(99) err = %v, want ErrUnknownEvent", err)
	}
	if err := tbl.Unregister(99); !errors.Is(err, events.ErrUnknownEvent) {
		t.Fatalf("unregister(99) err = %v, want ErrUnknownEvent", err)
	}
}

func TestTable_DeliverContextVerbatim(t *testing.T) {
	tbl := newSerialTable(t)
	var got contract.Context
	h := contract.HandlerFunc(func(ctx contract.Context) { got = ctx })

	if err := tbl.Register(api.SerialEventRead, h, 0xdead); err != nil {
		t.Fatal(err)
	}
	if !tbl.Deliver(api.SerialEventRead) {
		t.Fatal("registered event not delivered")
	}
	if got != 0xdead {
		t.Fatalf("context = %#x, want the registered token back verbatim", got)
	}
}

func TestTable_SpuriousDelivery(t *testing.T) {
	tbl := newSerialTable(t)
	var calls int
	if err := tbl.Register(api.SerialEventRead, countingHandler(&calls), 0); err != nil {
		t.Fatal(err)
	}
	// The host may deliver with no actual readiness, any number of times.
	for i := 0; i < 3; i++ {
		tbl.Deliver(api.SerialEventRead)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestTable_DeliverUnregistered(t *testing.T) {
	tbl := newSerialTable(t)
	if tbl.Deliver(api.SerialEventWrite) {
		t.Fatal("delivery to an unregistered event must be skipped")
	}
}

func TestTable_HandlerMayReregister(t *testing.T) {
	tbl := newSerialTable(t)
	// A one-shot handler unregisters itself on delivery.
	h := contract.HandlerFunc(func(contract.Context) {
		if err := tbl.Unregister(api.SerialEventRead); err != nil {
			t.Errorf("unregister from handler: %v", err)
		}
	})
	if err := tbl.Register(api.SerialEventRead, h, 0); err != nil {
		t.Fatal(err)
	}
	tbl.Deliver(api.SerialEventRead)
	if tbl.Registered(api.SerialEventRead) {
		t.Fatal("handler's own unregister was lost")
	}
}
