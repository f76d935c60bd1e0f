package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/segmentio/sequence/container"
	"github.com/segmentio/sequence/container/array"
	"github.com/segmentio/sequence/container/clist"
	"github.com/segmentio/sequence/container/dlist"
	"github.com/segmentio/sequence/container/slist"
)

type scenario func(r *reporter, options []array.Option) error

var scenarios = map[string]scenario{
	"array": arrayScenario,
	"slist": slistScenario,
	"dlist": dlistScenario,
	"clist": clistScenario,
}

// reporter prints the state of a container after each step of a scenario.
type reporter struct {
	out io.Writer
	log *log.Entry
}

func (r *reporter) step(name string, c container.Interface[int], fields log.Fields) {
	entry := r.log.WithFields(log.Fields{
		"step": name,
		"len":  c.Len(),
	})
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Info(c.String())
	fmt.Fprintf(r.out, "%s: %s\n", name, c)
}

func arrayScenario(r *reporter, options []array.Option) error {
	a := array.New[int](options...)
	capacity := func() log.Fields { return log.Fields{"cap": a.Cap()} }
	r.step("init", a, capacity())

	for _, v := range []int{1, 2, 3} {
		a.Append(v)
	}
	r.step("append", a, capacity())

	if err := a.Insert(1, 5); err != nil {
		return err
	}
	if err := a.Insert(4, 8); err != nil {
		return err
	}
	r.step("insert", a, capacity())

	for i := 0; i < 4; i++ {
		if _, err := a.Pop(); err != nil {
			return err
		}
		r.step("pop", a, capacity())
	}
	return nil
}

func slistScenario(r *reporter, _ []array.Option) error {
	l := slist.New[int]()
	r.step("init", l, nil)

	l.AddFirst(0)
	l.AddLast(1)
	l.AddLast(2)
	l.AddFirst(10)
	l.AddLast(20)
	r.step("add", l, nil)

	if _, err := l.RemoveLast(); err != nil {
		return err
	}
	r.step("remove-last", l, nil)

	for i := 0; i < 2; i++ {
		v, err := l.Consume()
		if err != nil {
			return err
		}
		r.step("consume", l, log.Fields{"value": v})
	}
	return nil
}

func dlistScenario(r *reporter, _ []array.Option) error {
	l := dlist.New[int]()
	r.step("init", l, nil)

	l.AddFirst(3)
	l.AddFirst(2)
	l.AddFirst(1)
	l.AddLast(4)
	r.step("add", l, nil)

	if _, err := l.RemoveFirst(); err != nil {
		return err
	}
	r.step("remove-first", l, nil)

	if _, err := l.RemoveLast(); err != nil {
		return err
	}
	r.step("remove-last", l, nil)
	return nil
}

func clistScenario(r *reporter, _ []array.Option) error {
	l := clist.New[int]()
	r.step("init", l, nil)

	l.AddFirst(3)
	l.AddFirst(2)
	l.AddLast(4)
	r.step("add", l, nil)

	l.AddFirst(1)
	l.AddFirst(0)
	if _, err := l.RemoveFirst(); err != nil {
		return err
	}
	r.step("remove-first", l, nil)

	l.Rotate()
	r.step("rotate", l, nil)
	return nil
}
