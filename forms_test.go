package main

import (
	"reflect"
	"testing"
)

func TestExpandSelection_SentinelExpandsInListedOrder(t *testing.T) {
	choices := []choice{{Value: "b"}, {Value: "a"}, {Value: "c"}}
	got := expandSelection([]int{selectAllIndex}, choices)
	if !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("expected listed order, got %v", got)
	}
}

func TestExpandSelection_SentinelWinsOverPartialPicks(t *testing.T) {
	choices := []choice{{Value: "a"}, {Value: "b"}}
	got := expandSelection([]int{1, selectAllIndex}, choices)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected full expansion, got %v", got)
	}
}

func TestExpandSelection_ManualPicksSortedByPosition(t *testing.T) {
	choices := []choice{{Value: "a"}, {Value: "b"}, {Value: "c"}}
	got := expandSelection([]int{2, 0}, choices)
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected position order, got %v", got)
	}
}

func TestExpandSelection_IgnoresOutOfRangeIndices(t *testing.T) {
	choices := []choice{{Value: "a"}}
	got := expandSelection([]int{0, 5, -2}, choices)
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected out-of-range indices dropped, got %v", got)
	}
}

func TestExpandSelection_EmptyPick(t *testing.T) {
	if got := expandSelection(nil, []choice{{Value: "a"}}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestSelectAllValueCannotCollide(t *testing.T) {
	// Real entries always occupy indices >= 0.
	if selectAllIndex >= 0 {
		t.Fatalf("sentinel must be negative, got %d", selectAllIndex)
	}
}
