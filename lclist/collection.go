package lclist

// Collection is a pool of next/prev cells shared by every list keyed by the
// same id space (vertex ids or DFS-child ids in [0, N)).
//
// Complexity: Append, Prepend, Delete and Next are all O(1).
type Collection struct {
	next []int
	prev []int
}

// NewCollection allocates a Collection capable of holding ids in [0, capacity).
func NewCollection(capacity int) *Collection {
	c := &Collection{
		next: make([]int, capacity),
		prev: make([]int, capacity),
	}
	c.Reset()
	return c
}

// Reset clears every cell back to its just-allocated state. Called on a full
// graph reinitialization; it does not forget which ids are "live" members of
// some list because no Collection tracks that — callers own list heads.
func (c *Collection) Reset() {
	for i := range c.next {
		c.next[i] = NIL
		c.prev[i] = NIL
	}
}

// Append adds id to the end of the list whose current head is head, and
// returns the (possibly unchanged) new head.
func (c *Collection) Append(head, id int) int {
	if head == NIL {
		c.next[id] = id
		c.prev[id] = id
		return id
	}

	tail := c.prev[head]
	c.next[tail] = id
	c.prev[id] = tail
	c.next[id] = head
	c.prev[head] = id

	return head
}

// Prepend adds id to the front of the list whose current head is head, and
// returns the new head (always id, unless the list was already a singleton
// of id).
func (c *Collection) Prepend(head, id int) int {
	if head == NIL {
		c.next[id] = id
		c.prev[id] = id
		return id
	}

	tail := c.prev[head]
	c.next[tail] = id
	c.prev[id] = tail
	c.next[id] = head
	c.prev[head] = id

	return id
}

// Delete removes id from the list whose current head is head, and returns
// the new head (NIL if the list becomes empty).
func (c *Collection) Delete(head, id int) int {
	newHead := head
	if id == head {
		if c.next[head] == head {
			newHead = NIL
		} else {
			newHead = c.next[head]
		}
	}

	p, n := c.prev[id], c.next[id]
	c.next[p] = n
	c.prev[n] = p
	c.next[id] = NIL
	c.prev[id] = NIL

	return newHead
}

// Next returns the element following cur in the list whose head is head, or
// NIL once the walk has wrapped back around to head. Traversal of a whole
// list is: for e := head; e != NIL; e = c.Next(head, e) { ... }.
func (c *Collection) Next(head, cur int) int {
	n := c.next[cur]
	if n == head {
		return NIL
	}
	return n
}
