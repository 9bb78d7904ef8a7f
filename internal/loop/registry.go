package loop

import "github.com/tomz197/mythbusters/internal/entity"

// Handle refers to a registry slot. A handle goes stale once its object is
// removed, even if the slot is reused.
type Handle struct {
	index uint32
	gen   uint32
}

type slot struct {
	obj  entity.Object
	gen  uint32
	live bool
}

// Registry holds the live entities of the current room in a dense slot
// array. Freed slots are recycled through a free list. Objects spawned while
// a pass is running are queued until Flush; removals requested during a
// pass are applied by Sweep.
type Registry struct {
	slots   []slot
	free    []uint32
	handles map[entity.Object]Handle
	queued  []entity.Object
	doomed  []Handle
	scratch []entity.Object
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[entity.Object]Handle)}
}

// Add registers obj immediately. Adding an object twice returns its
// existing handle.
func (r *Registry) Add(obj entity.Object) Handle {
	if h, ok := r.handles[obj]; ok {
		return h
	}
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
	}
	s := &r.slots[idx]
	s.obj = obj
	s.live = true
	h := Handle{index: idx, gen: s.gen}
	r.handles[obj] = h
	return h
}

// Spawn queues obj until the next Flush. Implements entity.Spawner.
func (r *Registry) Spawn(obj entity.Object) {
	r.queued = append(r.queued, obj)
}

// Flush registers every queued object and returns them in spawn order.
// The returned slice is only valid until the next Flush.
func (r *Registry) Flush() []entity.Object {
	if len(r.queued) == 0 {
		return nil
	}
	added := r.queued
	for _, obj := range added {
		r.Add(obj)
	}
	r.queued = nil
	return added
}

// Get returns the object behind h, or false if h is stale.
func (r *Registry) Get(h Handle) (entity.Object, bool) {
	if int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := r.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return s.obj, true
}

// HandleOf returns the handle of a registered object.
func (r *Registry) HandleOf(obj entity.Object) (Handle, bool) {
	h, ok := r.handles[obj]
	return h, ok
}

// Contains reports whether obj is registered.
func (r *Registry) Contains(obj entity.Object) bool {
	_, ok := r.handles[obj]
	return ok
}

// Defer marks h for removal at the next Sweep. Stale handles are ignored.
func (r *Registry) Defer(h Handle) {
	if _, ok := r.Get(h); ok {
		r.doomed = append(r.doomed, h)
	}
}

// DeferObject marks obj for removal at the next Sweep.
func (r *Registry) DeferObject(obj entity.Object) {
	if h, ok := r.handles[obj]; ok {
		r.doomed = append(r.doomed, h)
	}
}

// Sweep applies deferred removals and returns the removed objects. An
// object deferred twice is removed once.
func (r *Registry) Sweep() []entity.Object {
	if len(r.doomed) == 0 {
		return nil
	}
	r.scratch = r.scratch[:0]
	for _, h := range r.doomed {
		if obj, ok := r.remove(h); ok {
			r.scratch = append(r.scratch, obj)
		}
	}
	r.doomed = r.doomed[:0]
	return r.scratch
}

func (r *Registry) remove(h Handle) (entity.Object, bool) {
	obj, ok := r.Get(h)
	if !ok {
		return nil, false
	}
	s := &r.slots[h.index]
	s.obj = nil
	s.live = false
	s.gen++
	r.free = append(r.free, h.index)
	delete(r.handles, obj)
	return obj, true
}

// Objects appends every live object to dst in slot order and returns it.
func (r *Registry) Objects(dst []entity.Object) []entity.Object {
	for _, s := range r.slots {
		if s.live {
			dst = append(dst, s.obj)
		}
	}
	return dst
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	return len(r.handles)
}

// Count returns the number of live objects of a kind.
func (r *Registry) Count(kind entity.Kind) int {
	n := 0
	for _, s := range r.slots {
		if s.live && s.obj.Kind() == kind {
			n++
		}
	}
	return n
}

// Clear removes everything, including queued spawns, and returns what was
// live. Every outstanding handle goes stale.
func (r *Registry) Clear() []entity.Object {
	r.scratch = r.Objects(r.scratch[:0])
	for i := range r.slots {
		s := &r.slots[i]
		if s.live {
			s.obj = nil
			s.live = false
			s.gen++
			r.free = append(r.free, uint32(i))
		}
	}
	clear(r.handles)
	r.queued = nil
	r.doomed = r.doomed[:0]
	return r.scratch
}
