package reactive

import "testing"

func TestOwnerHierarchy(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)

	if child.Parent() != root {
		t.Error("child parent mismatch")
	}
	if root.Parent() != nil {
		t.Error("root must have no parent")
	}
}

func TestOwnerDisposeOrder(t *testing.T) {
	var order []string
	root := NewOwner(nil)
	a := NewOwner(root)
	b := NewOwner(root)

	a.OnCleanup(func() { order = append(order, "a") })
	b.OnCleanup(func() { order = append(order, "b") })
	root.OnCleanup(func() { order = append(order, "root-1") })
	root.OnCleanup(func() { order = append(order, "root-2") })

	root.Dispose()

	want := []string{"b", "a", "root-2", "root-1"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
	if !a.IsDisposed() || !b.IsDisposed() {
		t.Error("children not disposed")
	}
}

func TestOwnerDoubleDispose(t *testing.T) {
	calls := 0
	o := NewOwner(nil)
	o.OnCleanup(func() { calls++ })
	o.Dispose()
	o.Dispose()
	if calls != 1 {
		t.Errorf("cleanup ran %d times", calls)
	}
}

func TestOwnerCleanupAfterDisposeRunsImmediately(t *testing.T) {
	o := NewOwner(nil)
	o.Dispose()
	ran := false
	o.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup registered after dispose did not run")
	}
}

func TestOwnerDisposeRemovesFromParent(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	child.Dispose()

	if n := len(root.snapshotChildren()); n != 0 {
		t.Errorf("parent still has %d children", n)
	}
}

func TestSignalCreatedInDisposedOwner(t *testing.T) {
	o := NewOwner(nil)
	o.Dispose()

	var s *Signal[int]
	WithOwner(o, func() { s = NewSignal(1) })
	if !s.IsDisposed() {
		t.Error("signal created in disposed owner must be disposed")
	}
}

func TestNewRootAndChild(t *testing.T) {
	var inner *Signal[string]
	root := NewRoot(func(root *Owner) {
		root.Child(func() { inner = NewSignal("x") })
	})

	if inner.IsDisposed() {
		t.Fatal("disposed too early")
	}
	root.Dispose()
	if !inner.IsDisposed() {
		t.Error("grandchild storage survived root disposal")
	}
}

func TestContextLookup(t *testing.T) {
	type key struct{}
	root := NewOwner(nil)

	WithOwner(root, func() {
		ProvideContext(key{}, "dark")
		root.Child(func() {
			v, ok := UseContext[string](key{})
			if !ok || v != "dark" {
				t.Errorf("UseContext = %q, %v", v, ok)
			}
			if _, ok := UseContext[int](key{}); ok {
				t.Error("wrong type must not match")
			}
		})
	})

	if _, ok := UseContext[string](key{}); ok {
		t.Error("context visible outside any owner")
	}
}
