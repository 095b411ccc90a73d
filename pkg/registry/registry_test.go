package registry

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	reg := New[string]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
}

func TestNewWithItems(t *testing.T) {
	reg := New("/a", "/b", "/a", "/c")

	want := []string{"/a", "/b", "/c"}
	if got := reg.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestAppend(t *testing.T) {
	reg := New[string]()

	t.Run("append new item", func(t *testing.T) {
		if !reg.Append("/usr/lib") {
			t.Error("Append() of a new item should report true")
		}
		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("append duplicate", func(t *testing.T) {
		if reg.Append("/usr/lib") {
			t.Error("Append() of a duplicate should report false")
		}
		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1 after duplicate", reg.Count())
		}
	})

	t.Run("order is preserved", func(t *testing.T) {
		reg.Append("/opt/lib")
		reg.Append("/home/lib")

		want := []string{"/usr/lib", "/opt/lib", "/home/lib"}
		if got := reg.List(); !reflect.DeepEqual(got, want) {
			t.Errorf("List() = %v, want %v", got, want)
		}
	})
}

func TestHas(t *testing.T) {
	reg := New(1, 2, 3)

	if !reg.Has(2) {
		t.Error("Has(2) = false, want true")
	}
	if reg.Has(4) {
		t.Error("Has(4) = true, want false")
	}
}

func TestListReturnsCopy(t *testing.T) {
	reg := New("a", "b")

	list := reg.List()
	list[0] = "mutated"

	if got := reg.List()[0]; got != "a" {
		t.Errorf("List() exposed internal storage, first item = %q", got)
	}
}

func TestConcurrentAppend(t *testing.T) {
	reg := New[string]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			reg.Append(fmt.Sprintf("/dir/%d", n%10))
		}(i)
	}
	wg.Wait()

	if reg.Count() != 10 {
		t.Errorf("Count() = %d, want 10 distinct items", reg.Count())
	}
}
