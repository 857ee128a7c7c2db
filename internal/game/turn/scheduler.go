package turn

import (
	"container/heap"
	"fmt"

	"github.com/cory-johannsen/ruins/internal/game/character"
)

type slot struct {
	chara *character.Character
	seq   int
	index int
}

// slotQueue is a min-heap on (Wait, seq).
type slotQueue []*slot

func (q slotQueue) Len() int { return len(q) }

func (q slotQueue) Less(i, j int) bool {
	if q[i].chara.Wait != q[j].chara.Wait {
		return q[i].chara.Wait < q[j].chara.Wait
	}
	return q[i].seq < q[j].seq
}

func (q slotQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *slotQueue) Push(x any) {
	s := x.(*slot)
	s.index = len(*q)
	*q = append(*q, s)
}

func (q *slotQueue) Pop() any {
	old := *q
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.index = -1
	*q = old[:n-1]
	return s
}

// Scheduler orders characters by accumulated wait time. Each turn taken
// charges base*100/speed, so faster characters act more often.
// Characters with equal wait act in the order they were queued.
type Scheduler struct {
	base  int
	queue slotQueue
	slots map[string]*slot
	seq   int
}

// NewScheduler creates an empty Scheduler.
//
// Precondition: base >= 1.
func NewScheduler(base int) *Scheduler {
	if base < 1 {
		panic(fmt.Sprintf("turn: NewScheduler called with base %d < 1", base))
	}
	return &Scheduler{base: base, slots: make(map[string]*slot)}
}

// Cost returns the wait one turn charges to c. Speed below 1 counts as 1.
func (s *Scheduler) Cost(c *character.Character) int {
	spd := max(c.Attr(character.Spd), 1)
	return max(s.base*100/spd, 1)
}

// Add queues c keeping its current Wait. Adding a character already queued is a no-op.
func (s *Scheduler) Add(c *character.Character) {
	if _, ok := s.slots[c.ID]; ok {
		return
	}
	sl := &slot{chara: c, seq: s.nextSeq()}
	heap.Push(&s.queue, sl)
	s.slots[c.ID] = sl
}

// Remove drops the character with the given id. Reports whether it was queued.
func (s *Scheduler) Remove(id string) bool {
	sl, ok := s.slots[id]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, sl.index)
	delete(s.slots, id)
	return true
}

// Contains reports whether id is queued.
func (s *Scheduler) Contains(id string) bool {
	_, ok := s.slots[id]
	return ok
}

// Peek returns the next character without charging it.
func (s *Scheduler) Peek() (*character.Character, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	return s.queue[0].chara, true
}

// Next returns the character whose turn has arrived, charges it one turn
// and requeues it behind every character of equal wait.
//
// Postcondition: returns (nil, false) iff the scheduler is empty.
func (s *Scheduler) Next() (*character.Character, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	sl := s.queue[0]
	sl.chara.Wait += s.Cost(sl.chara)
	sl.seq = s.nextSeq()
	heap.Fix(&s.queue, 0)
	return sl.chara, true
}

// Len returns the number of queued characters.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

func (s *Scheduler) nextSeq() int {
	s.seq++
	return s.seq
}
