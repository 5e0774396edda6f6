package httpframe

import (
	"strings"
	"testing"
)

func TestBufStreamPeekAndConsume(t *testing.T) {
	s := NewStream(strings.NewReader("hello world"), 64)
	b, err := s.Peek(5)
	if err != nil {
		t.Fatalf("Peek error: %v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("Peek = %q", b)
	}
	s.Consume(6)
	b, err = s.Peek(5)
	if err != nil || string(b) != "world" {
		t.Fatalf("Peek after Consume = %q, err = %v", b, err)
	}
}

func TestBufStreamPeekBiggerThanCapacity(t *testing.T) {
	s := NewStream(strings.NewReader("hi"), 16)
	if _, err := s.Peek(1000); err != ErrBiggerThanCapacity {
		t.Fatalf("error = %v, want ErrBiggerThanCapacity", err)
	}
}

func TestBufStreamReadExact(t *testing.T) {
	s := NewStream(strings.NewReader("abcdef"), 64)
	b, err := s.ReadExact(3)
	if err != nil || string(b) != "abc" {
		t.Fatalf("ReadExact = %q, err = %v", b, err)
	}
}

func TestGuardTryAcquireExclusive(t *testing.T) {
	g := NewGuard()
	if !g.TryAcquire() {
		t.Fatal("first TryAcquire should succeed")
	}
	if g.TryAcquire() {
		t.Fatal("second TryAcquire should fail while held")
	}
	g.Release()
	if !g.TryAcquire() {
		t.Fatal("TryAcquire should succeed after Release")
	}
}

func TestSharedStreamWithGuardRejectsReentrantAccess(t *testing.T) {
	s := NewSharedStream(NewStream(strings.NewReader("data"), 64))
	if !s.Guard.TryAcquire() {
		t.Fatal("expected to acquire guard")
	}
	err := s.withGuard(func() error { return nil })
	if err != ErrGuardedResourceAccess {
		t.Fatalf("error = %v, want ErrGuardedResourceAccess", err)
	}
	s.Guard.Release()
}
