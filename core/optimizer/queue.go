package optimizer

import (
	"container/heap"

	"github.com/kilianp07/dayplan/core/model"
)

// queueItem is a ready flexible task waiting for placement.
type queueItem struct {
	task  model.Task
	score float64
	eff   int // effective duration in minutes
}

// taskQueue is a max-heap on score with a deterministic tie-break on the
// lowest task id, so insertion order never influences the timeline.
type taskQueue []queueItem

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].score != q[j].score {
		return q[i].score > q[j].score
	}
	return q[i].task.ID < q[j].task.ID
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

func (o *Optimizer) pushReady(it queueItem) {
	heap.Push(&o.queue, it)
}

func (o *Optimizer) popReady() (queueItem, bool) {
	if o.queue.Len() == 0 {
		return queueItem{}, false
	}
	return heap.Pop(&o.queue).(queueItem), true
}
