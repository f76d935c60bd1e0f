package clist

import (
	"errors"
	"testing"
	"testing/quick"

	"golang.org/x/exp/slices"

	"github.com/segmentio/sequence/container"
)

func TestList(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T, *List[int])
	}{
		{
			scenario: "a new list is empty",
			function: testListEmpty,
		},

		{
			scenario: "a single element links to itself",
			function: testListSingleElement,
		},

		{
			scenario: "elements added first are found at the head",
			function: testListAddFirst,
		},

		{
			scenario: "elements added last are found at the tail",
			function: testListAddLast,
		},

		{
			scenario: "removing the first element advances the head",
			function: testListRemoveFirst,
		},

		{
			scenario: "removing from an empty list fails",
			function: testListRemoveFirstEmpty,
		},

		{
			scenario: "rotating an empty list is a no-op",
			function: testListRotateEmpty,
		},

		{
			scenario: "rotating moves the head to the tail",
			function: testListRotate,
		},

		{
			scenario: "rotating as many times as there are elements restores the list",
			function: testListRotateFullCycle,
		},

		{
			scenario: "clearing the list removes all elements",
			function: testListClear,
		},

		{
			scenario: "the list renders its elements from the head",
			function: testListString,
		},

		{
			scenario: "reproduces the reference insert, remove and rotate sequence",
			function: testListReferenceScenario,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			test.function(t, New[int]())
		})
	}
}

func testListEmpty(t *testing.T, l *List[int]) {
	assertList(t, l)
	if !l.Empty() {
		t.Error("new list is not empty")
	}
}

func testListSingleElement(t *testing.T, l *List[int]) {
	l.AddFirst(1)
	assertList(t, l, 1)

	if l.tail.next != l.tail {
		t.Error("the node of a single element list does not link to itself")
	}
}

func testListAddFirst(t *testing.T, l *List[int]) {
	for i := 0; i < 10; i++ {
		l.AddFirst(i)
	}
	assertList(t, l, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0)
}

func testListAddLast(t *testing.T, l *List[int]) {
	for i := 0; i < 10; i++ {
		l.AddLast(i)
	}
	assertList(t, l, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func testListRemoveFirst(t *testing.T, l *List[int]) {
	values := [10]int{}

	for i := range values {
		values[i] = i
		l.AddLast(i)
	}

	for i, v := range values {
		found, err := l.RemoveFirst()
		if err != nil {
			t.Fatal(err)
		}
		if found != v {
			t.Errorf("value mismatch, expected %d but found %d", v, found)
		}
		assertList(t, l, values[i+1:]...)
	}

	if l.tail != nil {
		t.Error("tail of emptied list was not cleared")
	}
}

func testListRemoveFirstEmpty(t *testing.T, l *List[int]) {
	if _, err := l.RemoveFirst(); !errors.Is(err, container.ErrEmptyContainer) {
		t.Errorf("removing from an empty list: got=%v want=%v", err, container.ErrEmptyContainer)
	}
	assertList(t, l)
}

func testListRotateEmpty(t *testing.T, l *List[int]) {
	l.Rotate()
	assertList(t, l)
}

func testListRotate(t *testing.T, l *List[int]) {
	l.AddLast(1)
	l.AddLast(2)
	l.AddLast(3)

	l.Rotate()
	assertList(t, l, 2, 3, 1)

	l.Rotate()
	assertList(t, l, 3, 1, 2)
}

func testListRotateFullCycle(t *testing.T, l *List[int]) {
	f := func(values []int) bool {
		l.Clear()

		for _, v := range values {
			l.AddLast(v)
		}
		head, tail := l.head(), l.tail

		for i := 0; i < l.Len(); i++ {
			l.Rotate()
		}

		if l.head() != head || l.tail != tail {
			t.Errorf("rotating %d times did not restore the head and tail", l.Len())
			return false
		}
		return slices.Equal(l.Slice(), values)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func testListClear(t *testing.T, l *List[int]) {
	for i := 0; i < 5; i++ {
		l.AddLast(i)
	}

	l.Clear()
	assertList(t, l)

	l.AddLast(1)
	assertList(t, l, 1)
}

func testListString(t *testing.T, l *List[int]) {
	if s := l.String(); s != "nil" {
		t.Errorf("wrong rendering of empty list: got=%q want=%q", s, "nil")
	}

	l.AddLast(2)
	l.AddLast(3)
	l.AddLast(4)

	const want = "2 -> 3 -> 4 -> (loops back)"
	if s := l.String(); s != want {
		t.Errorf("wrong rendering: got=%q want=%q", s, want)
	}
}

func testListReferenceScenario(t *testing.T, l *List[int]) {
	l.AddFirst(3)
	l.AddFirst(2)
	l.AddLast(4)
	assertList(t, l, 2, 3, 4)

	l.AddFirst(1)
	l.AddFirst(0)
	assertList(t, l, 0, 1, 2, 3, 4)

	if v, err := l.RemoveFirst(); err != nil {
		t.Fatal(err)
	} else if v != 0 {
		t.Errorf("wrong element removed: got=%d want=0", v)
	}
	assertList(t, l, 1, 2, 3, 4)

	l.Rotate()
	assertList(t, l, 2, 3, 4, 1)
}

func assertList(t *testing.T, l *List[int], v ...int) {
	t.Helper()

	if len(v) == 0 {
		if l.tail != nil {
			t.Errorf("tail of list mismatch, expected <nil> but found %+v", l.tail.element)
		}
		if _, err := l.First(); !errors.Is(err, container.ErrEmptyContainer) {
			t.Errorf("head of empty list: got=%v want=%v", err, container.ErrEmptyContainer)
		}
	} else {
		if front, err := l.First(); err != nil {
			t.Errorf("head of list mismatch, expected %d but found %v", v[0], err)
		} else if front != v[0] {
			t.Errorf("head of list mismatch, expected %d but found %d", v[0], front)
		}

		if back, err := l.Last(); err != nil {
			t.Errorf("tail of list mismatch, expected %d but found %v", v[len(v)-1], err)
		} else if back != v[len(v)-1] {
			t.Errorf("tail of list mismatch, expected %d but found %d", v[len(v)-1], back)
		}

		// Following size links from the head must lead back to it.
		n := l.head()
		for i := 0; i < len(v); i++ {
			n = n.next
		}
		if n != l.head() {
			t.Errorf("list does not loop back to its head after %d links", len(v))
		}
	}

	i := 0
	l.Range(func(x int) bool {
		if i >= len(v) {
			t.Errorf("[forward] list contains too many elements, expected %d but found %d", len(v), i+1)
			return false
		}
		if x != v[i] {
			t.Errorf("[forward] list element at index %d mismatch, expected %d but found %d", i, v[i], x)
			return false
		}
		i++
		return true
	})

	if n := l.Len(); n != len(v) {
		t.Errorf("list length mismatch, expected %d but found %d", len(v), n)
	}
}
