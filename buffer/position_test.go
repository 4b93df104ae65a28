package buffer

import "testing"

// Position Tests

func TestNewPosition(t *testing.T) {
	p := NewPosition(10)
	if p.Offset() != 10 {
		t.Errorf("expected offset 10, got %d", p.Offset())
	}
}

func TestNewPositionNegative(t *testing.T) {
	p := NewPosition(-5)
	if p.Offset() != 0 {
		t.Errorf("negative offset should clamp to 0, got %d", p.Offset())
	}
}

func TestPositionClamp(t *testing.T) {
	p := NewPosition(50)

	p2 := p.Clamp(30)
	if p2.Offset() != 30 {
		t.Errorf("expected clamped offset 30, got %d", p2.Offset())
	}

	p3 := p.Clamp(100)
	if p3.Offset() != 50 {
		t.Errorf("expected unchanged offset 50, got %d", p3.Offset())
	}
}

func TestPositionCompare(t *testing.T) {
	a := NewPosition(5)
	b := NewPosition(10)

	if a.Compare(b) != -1 {
		t.Error("expected a < b")
	}
	if b.Compare(a) != 1 {
		t.Error("expected b > a")
	}
	if a.Compare(NewPosition(5)) != 0 {
		t.Error("expected a == a")
	}
	if !a.Before(b) {
		t.Error("expected a.Before(b)")
	}
	if !b.After(a) {
		t.Error("expected b.After(a)")
	}
	if !a.Equals(NewPosition(5)) {
		t.Error("expected equal positions")
	}
}

func TestPositionString(t *testing.T) {
	p := NewPosition(7)
	if p.String() != "Position(7)" {
		t.Errorf("unexpected string: %s", p.String())
	}
}

// Range Tests

func TestRangeBasics(t *testing.T) {
	r := NewRange(2, 5)

	if r.Len() != 3 {
		t.Errorf("expected len 3, got %d", r.Len())
	}
	if r.IsEmpty() {
		t.Error("range should not be empty")
	}
	if !r.IsValid() {
		t.Error("range should be valid")
	}
	if r.String() != "[2:5)" {
		t.Errorf("unexpected string: %s", r.String())
	}
}

func TestRangeEmpty(t *testing.T) {
	r := NewRange(3, 3)
	if !r.IsEmpty() {
		t.Error("expected empty range")
	}
	if !r.IsValid() {
		t.Error("empty range is valid")
	}
}

func TestRangeInvalid(t *testing.T) {
	r := NewRange(5, 2)
	if r.IsValid() {
		t.Error("expected invalid range")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(2, 5)

	tests := []struct {
		offset Offset
		want   bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false}, // end is exclusive
	}
	for _, tt := range tests {
		if got := r.Contains(tt.offset); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}
