package contract_test

import (
	"errors"
	"testing"

	"tether/internal/contract"
)

func TestResult_ZeroIsSuccess(t *testing.T) {
	// Zero may mean "no data available right now"; it is never a failure.
	var r contract.Result
	if r.Failed() {
		t.Fatal("zero result treated as failure")
	}
	if !r.Ok() {
		t.Fatal("zero result must be Ok")
	}
}

func TestResult_NegativeIsFailure(t *testing.T) {
	for _, r := range []contract.Result{-1, -2, -2147483648} {
		if !r.Failed() {
			t.Errorf("%d must be a failure regardless of magnitude", r)
		}
	}
	for _, r := range []contract.Result{0, 1, 2147483647} {
		if r.Failed() {
			t.Errorf("%d must be success", r)
		}
	}
}

func TestBuffer_EmptyAlwaysPasses(t *testing.T) {
	// read(ptr, 0) is a legal call even with a wild address.
	b := contract.Buffer{Addr: 0xdeadbeef, Len: 0}
	if err := b.Check(1024); err != nil {
		t.Fatalf("empty buffer rejected: %v", err)
	}
	if !b.Empty() {
		t.Fatal("zero-length buffer must be Empty")
	}
}

func TestBuffer_Check(t *testing.T) {
	cases := []struct {
		name string
		buf  contract.Buffer
		mem  uint32
		ok   bool
	}{
		{"inside", contract.Buffer{Addr: 0, Len: 16}, 1024, true},
		{"exact fit", contract.Buffer{Addr: 1008, Len: 16}, 1024, true},
		{"past end", contract.Buffer{Addr: 1020, Len: 16}, 1024, false},
		{"addr outside", contract.Buffer{Addr: 4096, Len: 1}, 1024, false},
		{"wraparound", contract.Buffer{Addr: 0xffffffff, Len: 2}, 0xffffffff, false},
	}
	for _, tc := range cases {
		err := tc.buf.Check(tc.mem)
		if tc.ok && err != nil {
			t.Errorf("%s: rejected: %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, contract.ErrOutOfRange) {
			t.Errorf("%s: err = %v, want ErrOutOfRange", tc.name, err)
		}
	}
}

func TestHandlerFunc_ContextVerbatim(t *testing.T) {
	var got contract.Context
	h := contract.HandlerFunc(func(ctx contract.Context) { got = ctx })
	h.Invoke(0xcafe)
	if got != 0xcafe {
		t.Fatalf("context = %#x, want 0xcafe", got)
	}
}
