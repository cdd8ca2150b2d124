package history

import "testing"

func TestLedgerPushOrderAndLen(t *testing.T) {
	l := New()
	l.Push(NewSnapshot(2, []int{0, 1, -1, -1}, nil))
	l.Push(NewSnapshot(2, []int{0, 1, 2, 3}, nil))

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.At(0).Values[1] != 1 || l.At(1).Values[2] != 2 {
		t.Error("snapshots not retained in push order")
	}
}

func TestLedgerClear(t *testing.T) {
	l := New()
	l.Push(NewSnapshot(1, []int{0}, nil))
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", l.Len())
	}
}

func TestNewSnapshotCopiesNotAliases(t *testing.T) {
	values := []int{1, 2, 3}
	s := NewSnapshot(3, values, nil)

	values[0] = 999
	if s.Values[0] == 999 {
		t.Error("Snapshot aliases caller's slice; mutation leaked through")
	}
}

func TestNewSnapshotNilPath(t *testing.T) {
	s := NewSnapshot(1, []int{0}, nil)
	if s.Path != nil {
		t.Error("Path should remain nil when no path slice is supplied")
	}
}
