// Package store implements the persistent stores for locks, snapshots, plans
// and income records.
//
// Every store notifies its subscribers synchronously after each write, even
// when the write did not change anything or failed to persist.
package store

import "sync"

type observers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

// subscribe registers fn and returns a function that removes it again.
func (o *observers) subscribe(fn func()) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.fns == nil {
		o.fns = make(map[int]func())
	}

	id := o.next
	o.next++
	o.fns[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.fns, id)
	}
}

// notify calls all subscribers. Subscribers are copied first so that they
// can unsubscribe or read the store from within the callback.
func (o *observers) notify() {
	o.mu.Lock()
	fns := make([]func(), 0, len(o.fns))
	for _, fn := range o.fns {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
