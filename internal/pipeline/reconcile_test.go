package pipeline

import (
	"reflect"
	"sort"
	"testing"
)

func TestReconcile(t *testing.T) {
	res := Reconcile([]string{"1234567890", "9876543210"}, []string{"1234567890", "1111111111"})
	if !reflect.DeepEqual(res.Added, []string{"1111111111"}) {
		t.Fatalf("added=%v", res.Added)
	}
	if !reflect.DeepEqual(res.Removed, []string{"9876543210"}) {
		t.Fatalf("removed=%v", res.Removed)
	}
	if res.OldCount != 2 || res.NewCount != 2 {
		t.Fatalf("counts=%d/%d", res.OldCount, res.NewCount)
	}
}

func TestReconcileEmpty(t *testing.T) {
	res := Reconcile(nil, nil)
	if len(res.Added) != 0 || len(res.Removed) != 0 || res.OldCount != 0 || res.NewCount != 0 {
		t.Fatalf("res=%+v", res)
	}
}

func TestReconcileSelf(t *testing.T) {
	ids := []string{"3", "1", "2", "1"}
	res := Reconcile(ids, ids)
	if len(res.Added) != 0 || len(res.Removed) != 0 {
		t.Fatalf("res=%+v", res)
	}
	if res.OldCount != 4 || res.NewCount != 4 {
		t.Fatalf("counts=%d/%d", res.OldCount, res.NewCount)
	}
}

func TestReconcileDuplicatesCountedNotListed(t *testing.T) {
	res := Reconcile([]string{"1", "1", "2"}, []string{"3", "3", "3"})
	if !reflect.DeepEqual(res.Added, []string{"3"}) || !reflect.DeepEqual(res.Removed, []string{"1", "2"}) {
		t.Fatalf("res=%+v", res)
	}
	if res.OldCount != 3 || res.NewCount != 3 {
		t.Fatalf("counts=%d/%d", res.OldCount, res.NewCount)
	}
}

func TestReconcileLaws(t *testing.T) {
	cases := []struct {
		a, b []string
	}{
		{a: []string{"1", "2", "3"}, b: []string{"2", "3", "4"}},
		{a: []string{"5"}, b: nil},
		{a: nil, b: []string{"6", "6"}},
		{a: []string{"7", "8"}, b: []string{"9", "10"}},
	}
	for _, tc := range cases {
		ab := Reconcile(tc.a, tc.b)
		ba := Reconcile(tc.b, tc.a)
		if !reflect.DeepEqual(ab.Added, ba.Removed) || !reflect.DeepEqual(ab.Removed, ba.Added) {
			t.Fatalf("not symmetric: %+v vs %+v", ab, ba)
		}
		if !reflect.DeepEqual(ab.Added, minus(tc.b, tc.a)) || !reflect.DeepEqual(ab.Removed, minus(tc.a, tc.b)) {
			t.Fatalf("difference mismatch for %v %v: %+v", tc.a, tc.b, ab)
		}
	}
}

// minus is a naive B-A in first-seen order, sorted for comparison.
func minus(b, a []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, x := range b {
		if seen[x] {
			continue
		}
		seen[x] = true
		found := false
		for _, y := range a {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			out = append(out, x)
		}
	}
	return sortedCopy(out)
}

func sortedCopy(in []string) []string {
	out := append([]string{}, in...)
	sort.Strings(out)
	return out
}
