package examples

import (
	"fmt"
	"slices"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("names are not sorted: %v", names)
	}
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func ExampleYCombinator() {
	fmt.Println(YCombinator())
	// Output: \v3 -> (\v1 -> v3 (v1 v1)) (\v1 -> v3 (v1 v1))
}
