package optimizer

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/dayplan/core/breaks"
	"github.com/kilianp07/dayplan/core/duration"
	"github.com/kilianp07/dayplan/core/energy"
	"github.com/kilianp07/dayplan/core/events"
	"github.com/kilianp07/dayplan/core/logger"
	"github.com/kilianp07/dayplan/core/metrics"
	"github.com/kilianp07/dayplan/core/model"
	"github.com/kilianp07/dayplan/core/readiness"
	"github.com/kilianp07/dayplan/core/score"
	"github.com/kilianp07/dayplan/core/slot"
	"github.com/kilianp07/dayplan/internal/eventbus"
)

// iterationFactor bounds the scheduling loop relative to the task count so a
// pathological input can never spin forever.
const iterationFactor = 10

// Optimizer runs the scheduling engine for a single day. All mutable state
// lives on the instance and is discarded after Run.
type Optimizer struct {
	cfg      Config
	window   model.ScheduleWindow
	peaks    []model.PeakWindow
	adjuster *duration.Adjuster
	scorer   *score.Scorer
	energy   *energy.Model
	alloc    *slot.Allocator
	breaks   *breaks.Inserter
	resolver *readiness.Resolver
	log      logger.Logger
	sink     metrics.Sink
	bus      eventbus.EventBus

	runID       string
	state       State
	queue       taskQueue
	placed      map[string]time.Time // task id -> end time
	pending     map[string]model.Task
	queued      map[string]bool
	unscheduled []model.UnscheduledTask
	failedSet   map[string]bool
	resources   map[string]bool
}

// New builds an optimizer for one run. A nil logger, sink, or bus disables
// the corresponding output.
func New(cfg Config, window model.ScheduleWindow, peaks []model.PeakWindow,
	weather duration.WeatherProvider, travel duration.TravelProvider,
	log logger.Logger, sink metrics.Sink, bus eventbus.EventBus) *Optimizer {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	em := energy.NewModel(cfg.Energy)
	alloc := slot.NewAllocator(cfg.Slot, window, peaks)
	o := &Optimizer{
		cfg:       cfg,
		window:    window,
		peaks:     peaks,
		adjuster:  duration.NewAdjuster(weather, travel),
		scorer:    score.NewScorer(cfg.Weights),
		energy:    em,
		alloc:     alloc,
		breaks:    breaks.NewInserter(cfg.Breaks, alloc, em, log),
		log:       log,
		sink:      sink,
		bus:       bus,
		runID:     uuid.NewString(),
		state:     StateInit,
		placed:    make(map[string]time.Time),
		pending:   make(map[string]model.Task),
		queued:    make(map[string]bool),
		failedSet: make(map[string]bool),
		resources: make(map[string]bool, len(cfg.Resources)),
	}
	for _, r := range cfg.Resources {
		o.resources[r] = true
	}
	return o
}

// Run produces the day's timeline. Structural input errors return a non-nil
// error with a FAILED result; per-task failures are collected in the result.
func (o *Optimizer) Run(tasks []model.Task) (Result, error) {
	started := time.Now()

	o.setState(StateLoading)
	if err := o.window.Validate(); err != nil {
		return o.fail(), err
	}

	fixed, flexible := o.loadTasks(tasks)
	if err := o.checkFixedOverlap(fixed); err != nil {
		return o.fail(), err
	}

	// The resolver must index the full task set: a task gated out later is
	// still "present today", so its dependents stay blocked on it.
	o.resolver = readiness.NewResolver(append(append([]model.Task{}, fixed...), flexible...))

	o.setState(StateScheduling)
	o.placeFixed(fixed)
	o.insertScheduledBreaks()
	flexible = o.gateResources(flexible)
	o.enqueueInitial(flexible)
	o.scheduleLoop(len(flexible))
	o.resolveStalled()

	o.setState(StateDone)
	state := o.energy.State()
	if err := o.sink.RecordEnergy(state.Current); err != nil {
		o.log.Warnf("record energy: %v", err)
	}
	if err := o.sink.RecordRunDuration(time.Since(started)); err != nil {
		o.log.Warnf("record run duration: %v", err)
	}
	o.log.Infof("run %s done: %d events, %d unscheduled, energy %.1f/%.1f",
		o.runID, len(o.alloc.Timeline()), len(o.unscheduled), state.Current, state.Max)

	return Result{
		RunID:       o.runID,
		Date:        o.window.Date,
		State:       StateDone,
		Timeline:    o.alloc.Timeline(),
		Unscheduled: o.unscheduled,
		FinalEnergy: state.Current,
	}, nil
}

// loadTasks validates and partitions the input. Invalid definitions are
// skipped with a warning; fixed tasks come back sorted by start time and
// every effective duration is sampled once and cached.
func (o *Optimizer) loadTasks(tasks []model.Task) (fixed, flexible []model.Task) {
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			o.log.Warnf("skipping invalid task: %v", err)
			continue
		}
		o.adjuster.Adjust(t, o.window.Date)
		if t.Kind == model.KindFixed {
			fixed = append(fixed, t)
		} else {
			flexible = append(flexible, t)
		}
	}
	sort.Slice(fixed, func(i, j int) bool {
		if !fixed[i].FixedStart.Equal(fixed[j].FixedStart) {
			return fixed[i].FixedStart.Before(fixed[j].FixedStart)
		}
		return fixed[i].ID < fixed[j].ID
	})
	sort.Slice(flexible, func(i, j int) bool { return flexible[i].ID < flexible[j].ID })
	return fixed, flexible
}

// checkFixedOverlap rejects the run when two fixed tasks intersect. The
// timeline precondition is violated before scheduling even starts.
func (o *Optimizer) checkFixedOverlap(fixed []model.Task) error {
	for i := 1; i < len(fixed); i++ {
		prev := fixed[i-1]
		prevEnd := prev.FixedStart.Add(time.Duration(o.adjuster.Adjust(prev, o.window.Date)) * time.Minute)
		if fixed[i].FixedStart.Before(prevEnd) {
			o.log.Errorf("fixed tasks %s and %s overlap", prev.ID, fixed[i].ID)
			return model.ErrOverlappingFixedTasks
		}
	}
	return nil
}

// placeFixed commits the time-locked tasks. A fixed task starting outside the
// window is unschedulable; one running past the window end is clamped.
func (o *Optimizer) placeFixed(fixed []model.Task) {
	for _, t := range fixed {
		if t.FixedStart.Before(o.window.Start) || !t.FixedStart.Before(o.window.End) {
			o.markUnscheduled(t.ID, model.ReasonUnresolvableSlot)
			continue
		}
		eff := o.adjuster.Adjust(t, o.window.Date)
		end := t.FixedStart.Add(time.Duration(eff) * time.Minute)
		if end.After(o.window.End) {
			end = o.window.End
			eff = int(end.Sub(t.FixedStart) / time.Minute)
		}
		ev := model.ScheduledEvent{
			TaskID:            t.ID,
			Title:             t.Title,
			Kind:              model.KindFixed,
			Start:             t.FixedStart,
			End:               end,
			EffectiveDuration: eff,
		}
		if t.IsBreak() {
			ev.Break = model.BreakScheduled
		}
		if err := o.alloc.PlaceFixed(ev); err != nil {
			o.log.Errorf("fixed task %s: %v", t.ID, err)
			o.markUnscheduled(t.ID, model.ReasonUnresolvableSlot)
			continue
		}
		o.commit(t, ev)
	}
}

func (o *Optimizer) insertScheduledBreaks() {
	for _, ev := range o.breaks.InsertScheduled(o.window) {
		if err := o.sink.RecordPlacement(ev); err != nil {
			o.log.Warnf("record placement: %v", err)
		}
		o.publish(events.BreakEvent{RunID: o.runID, Event: ev})
	}
}

// gateResources filters out flexible tasks requiring a resource that is not
// available today. Only applies when resources are configured.
func (o *Optimizer) gateResources(flexible []model.Task) []model.Task {
	if len(o.resources) == 0 {
		return flexible
	}
	kept := flexible[:0]
	for _, t := range flexible {
		if t.RequiredResource != "" && !o.resources[t.RequiredResource] {
			o.markUnscheduled(t.ID, model.ReasonMissingResource)
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// enqueueInitial fills the pending set and pushes tasks that are ready now.
// Only ready tasks ever enter the queue.
func (o *Optimizer) enqueueInitial(flexible []model.Task) {
	for _, t := range flexible {
		o.pending[t.ID] = t
	}
	for _, t := range flexible {
		if o.resolver.IsReady(t, o.placed) {
			o.enqueue(t)
		}
	}
}

func (o *Optimizer) enqueue(t model.Task) {
	eff := o.adjuster.Adjust(t, o.window.Date)
	ctx := score.Context{
		Energy:     o.energy.State(),
		Peaks:      o.peaks,
		Cursor:     o.alloc.Cursor(),
		Dependents: o.resolver.DirectDependents,
	}
	o.pushReady(queueItem{task: t, score: o.scorer.Score(t, eff, ctx), eff: eff})
	o.queued[t.ID] = true
}

// scheduleLoop pops the highest-scored ready task, consults the energy model
// (inserting a rest first when required), places it, and requeues dependents
// that became ready. The loop is bounded to guarantee termination.
func (o *Optimizer) scheduleLoop(flexCount int) {
	limit := iterationFactor * (flexCount + 1)
	for iter := 0; iter < limit; iter++ {
		it, ok := o.popReady()
		if !ok {
			return
		}
		delete(o.queued, it.task.ID)
		o.schedule(it)
	}
	// Iteration cap hit: drain whatever is still queued.
	for {
		it, ok := o.popReady()
		if !ok {
			return
		}
		o.log.Warnf("iteration cap reached, dropping %s", it.task.ID)
		o.markUnscheduled(it.task.ID, model.ReasonUnresolvableSlot)
	}
}

func (o *Optimizer) schedule(it queueItem) {
	task, eff := it.task, it.eff

	switch o.energy.Evaluate(task, eff) {
	case energy.Defer:
		o.markUnscheduled(task.ID, model.ReasonEnergyExhausted)
		return
	case energy.RequireBreak:
		rest, err := o.breaks.InsertRest(task, eff, time.Time{})
		if err != nil {
			o.log.Warnf("no room to rest before %s: %v", task.ID, err)
			o.markUnscheduled(task.ID, model.ReasonEnergyExhausted)
			return
		}
		if err := o.sink.RecordPlacement(rest); err != nil {
			o.log.Warnf("record placement: %v", err)
		}
		o.publish(events.BreakEvent{RunID: o.runID, Event: rest, BeforeTaskID: task.ID})
		if o.energy.Evaluate(task, eff) != energy.Allow {
			o.markUnscheduled(task.ID, model.ReasonEnergyExhausted)
			return
		}
	}

	notBefore := o.resolver.EarliestStart(task, o.placed)
	ev, err := o.alloc.Place(task, eff, notBefore, model.BreakNone)
	if err != nil {
		o.log.Debugf("task %s not placed: %v", task.ID, err)
		o.markUnscheduled(task.ID, model.ReasonUnresolvableSlot)
		return
	}
	o.commit(task, ev)

	for _, dep := range o.resolver.DependentIDs(task.ID) {
		t, ok := o.pending[dep]
		if !ok || o.queued[dep] {
			continue
		}
		if o.resolver.IsReady(t, o.placed) {
			o.enqueue(t)
		}
	}
}

// commit records a successful placement: energy, placed set, metrics, events.
func (o *Optimizer) commit(task model.Task, ev model.ScheduledEvent) {
	o.energy.Consume(task, ev.EffectiveDuration)
	o.placed[task.ID] = ev.End
	delete(o.pending, task.ID)
	if err := o.sink.RecordPlacement(ev); err != nil {
		o.log.Warnf("record placement: %v", err)
	}
	o.publish(events.PlacedEvent{RunID: o.runID, Event: ev, Energy: o.energy.State().Current})
	o.log.Debugw("placed", map[string]any{
		"task":   task.ID,
		"start":  ev.Start,
		"end":    ev.End,
		"energy": o.energy.State().Current,
	})
}

// resolveStalled classifies tasks that never became ready. Tasks blocked on a
// failed dependency are unresolvable; the rest form dependency cycles.
func (o *Optimizer) resolveStalled() {
	for changed := true; changed; {
		changed = false
		var blocked []string
		for id, t := range o.pending {
			for _, dep := range t.DependencyIDs {
				if o.failedSet[dep] {
					blocked = append(blocked, id)
					break
				}
			}
		}
		sort.Strings(blocked)
		for _, id := range blocked {
			o.markUnscheduled(id, model.ReasonUnresolvableSlot)
			changed = true
		}
	}
	ids := make([]string, 0, len(o.pending))
	for id := range o.pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		o.markUnscheduled(id, model.ReasonCyclicDependency)
	}
}

func (o *Optimizer) markUnscheduled(id string, reason model.ReasonCode) {
	delete(o.pending, id)
	o.failedSet[id] = true
	o.unscheduled = append(o.unscheduled, model.UnscheduledTask{TaskID: id, Reason: reason})
	if err := o.sink.RecordUnscheduled(id, reason); err != nil {
		o.log.Warnf("record unscheduled: %v", err)
	}
	o.publish(events.UnscheduledEvent{RunID: o.runID, TaskID: id, Reason: reason})
	o.log.Infof("task %s unscheduled: %s", id, reason)
}

func (o *Optimizer) setState(s State) {
	o.publish(events.StateEvent{RunID: o.runID, From: string(o.state), To: string(s)})
	o.state = s
}

func (o *Optimizer) fail() Result {
	o.setState(StateFailed)
	return Result{RunID: o.runID, Date: o.window.Date, State: StateFailed}
}

func (o *Optimizer) publish(e eventbus.Event) {
	if o.bus != nil {
		o.bus.Publish(e)
	}
}
