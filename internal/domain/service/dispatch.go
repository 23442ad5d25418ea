package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/rs/zerolog"
)

var errDispatcherStopped = errors.New("dispatcher stopped")

type rollEvent struct {
	hourStart   time.Time
	bucket      *entity.HourBucket
	catchUpFrom time.Time
	done        chan struct{}
}

// dispatcher owns the active hour's bucket and its wake list. Only the run loop
// touches state; rolls and edits reach it through channels.
type dispatcher struct {
	dm        contract.DataManager
	messenger contract.Messenger
	metrics   contract.Metrics
	log       zerolog.Logger
	home      *time.Location
	now       func() time.Time

	rolls    chan rollEvent
	edits    chan struct{}
	loopDone chan struct{}
	cancel   context.CancelFunc
	startMu  sync.Mutex
	running  bool

	pendingMu sync.Mutex
	pending   map[int]*entity.HourBucket

	snapshotMu sync.RWMutex
	snapshot   entity.DispatchState

	state entity.DispatchState

	deliveries sync.WaitGroup
}

func newDispatcher(dm contract.DataManager, messenger contract.Messenger, metrics contract.Metrics, homeOffset int, now func() time.Time, log zerolog.Logger) *dispatcher {
	initial := entity.DispatchState{Hour: -1, Mode: entity.ModeEmpty}
	return &dispatcher{
		dm:        dm,
		messenger: messenger,
		metrics:   metrics,
		log:       log.With().Str("comp", "dispatch").Logger(),
		home:      time.FixedZone("home", homeOffset*3600),
		now:       now,
		rolls:     make(chan rollEvent),
		edits:     make(chan struct{}, 1),
		loopDone:  make(chan struct{}),
		pending:   map[int]*entity.HourBucket{},
		state:     initial,
		snapshot:  initial,
	}
}

func (d *dispatcher) Start(ctx context.Context) {
	d.startMu.Lock()
	defer d.startMu.Unlock()
	if d.running {
		return
	}
	d.running = true

	ctx, d.cancel = context.WithCancel(ctx)
	d.log.Info().Str("home", d.home.String()).Msg("dispatcher starting")
	go d.run(ctx)
}

// Stop ends the loop and waits for in-flight deliveries.
func (d *dispatcher) Stop() {
	d.startMu.Lock()
	if !d.running {
		d.startMu.Unlock()
		return
	}
	d.running = false
	d.cancel()
	d.startMu.Unlock()

	<-d.loopDone
	d.deliveries.Wait()
	d.log.Info().Msg("dispatcher stopped")
}

// RollTo installs bucket as the active hour and returns once the loop has done so.
// Wakes at or after catchUpFrom that are already due fire right away.
func (d *dispatcher) RollTo(ctx context.Context, hourStart time.Time, bucket *entity.HourBucket, catchUpFrom time.Time) error {
	ev := rollEvent{
		hourStart:   hourStart.UTC(),
		bucket:      bucket.Clone(),
		catchUpFrom: catchUpFrom,
		done:        make(chan struct{}),
	}

	select {
	case d.rolls <- ev:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.loopDone:
		return errDispatcherStopped
	}

	select {
	case <-ev.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.loopDone:
		return errDispatcherStopped
	}
}

// BucketChanged queues a committed bucket for the loop. It never blocks; only
// the newest revision per hour is kept.
func (d *dispatcher) BucketChanged(bucket *entity.HourBucket) {
	if bucket == nil {
		return
	}
	d.pendingMu.Lock()
	if cur, ok := d.pending[bucket.Hour]; !ok || bucket.Revision > cur.Revision {
		d.pending[bucket.Hour] = bucket.Clone()
	}
	d.pendingMu.Unlock()

	select {
	case d.edits <- struct{}{}:
	default:
	}
}

func (d *dispatcher) CurrentDispatchState() entity.DispatchState {
	d.snapshotMu.RLock()
	defer d.snapshotMu.RUnlock()
	return d.snapshot.Clone()
}

func (d *dispatcher) run(ctx context.Context) {
	defer close(d.loopDone)

	for {
		var timerC <-chan time.Time
		var timer *time.Timer
		if next, ok := d.nextWake(); ok {
			wait := next.At.Sub(d.now())
			if wait < 0 {
				wait = 0
			}
			timer = time.NewTimer(wait)
			timerC = timer.C
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return

		case ev := <-d.rolls:
			stopTimer(timer)
			d.applyRoll(ev)
			close(ev.done)

		case <-d.edits:
			stopTimer(timer)
			d.applyEdits()

		case <-timerC:
			d.fireDue(ctx)
		}
	}
}

func (d *dispatcher) applyRoll(ev rollEvent) {
	hour := ev.hourStart.Hour()
	bucket := ev.bucket
	if bucket == nil {
		bucket = entity.NewHourBucket(hour)
	}

	d.pendingMu.Lock()
	if p, ok := d.pending[hour]; ok && p.Revision > bucket.Revision {
		bucket = p
	}
	d.prunePendingLocked(hour)
	d.pendingMu.Unlock()

	cursor := ev.catchUpFrom
	if cursor.Before(ev.hourStart) {
		cursor = ev.hourStart
	}

	d.state = entity.DispatchState{
		Hour:      hour,
		HourStart: ev.hourStart,
		Slots:     bucket.Clone().Slots,
		Revision:  bucket.Revision,
		Wakes:     buildWakes(ev.hourStart, bucket, d.home),
		Cursor:    cursor,
		RolledAt:  d.now(),
	}
	d.state.Mode = modeFor(d.state.Wakes)

	d.metrics.WakeListRebuilt("roll", hour, len(d.state.Wakes))
	d.log.Info().
		Int("hour", hour).
		Int("wakes", len(d.state.Wakes)).
		Int64("revision", bucket.Revision).
		Time("catch_up_from", cursor).
		Msg("active hour rolled")
	d.publishState()
}

func (d *dispatcher) applyEdits() {
	if d.state.Hour < 0 {
		return
	}

	d.pendingMu.Lock()
	bucket, ok := d.pending[d.state.Hour]
	d.prunePendingLocked(d.state.Hour)
	d.pendingMu.Unlock()

	if !ok || bucket.Revision <= d.state.Revision {
		return
	}

	now := d.now()
	cursor := now
	if next, ok := d.nextWake(); ok && next.At.Before(now) {
		cursor = next.At
	}
	if cursor.Before(d.state.Cursor) {
		cursor = d.state.Cursor
	}

	d.state.Slots = bucket.Clone().Slots
	d.state.Revision = bucket.Revision
	d.state.Wakes = buildWakes(d.state.HourStart, bucket, d.home)
	d.state.Mode = modeFor(d.state.Wakes)
	d.state.Cursor = cursor

	d.metrics.WakeListRebuilt("edit", d.state.Hour, len(d.state.Wakes))
	d.log.Debug().
		Int("hour", d.state.Hour).
		Int("wakes", len(d.state.Wakes)).
		Int64("revision", bucket.Revision).
		Msg("wake list rebuilt")
	d.publishState()
}

// prunePendingLocked drops the entry for the active hour and anything that is
// neither the active nor the next hour.
func (d *dispatcher) prunePendingLocked(active int) {
	next := (active + 1) % domain.HoursPerDay
	for h := range d.pending {
		if h != next {
			delete(d.pending, h)
		}
	}
}

func (d *dispatcher) nextWake() (entity.Wake, bool) {
	for _, w := range d.state.Wakes {
		if !w.At.Before(d.state.Cursor) {
			return w, true
		}
	}
	return entity.Wake{}, false
}

func (d *dispatcher) fireDue(ctx context.Context) {
	now := d.now()
	fired := false
	for _, w := range d.state.Wakes {
		if w.At.Before(d.state.Cursor) {
			continue
		}
		if w.At.After(now) {
			break
		}
		d.dispatchMinute(ctx, w)
		d.state.Cursor = w.At.Add(time.Nanosecond)
		d.state.LastFired = w
		fired = true
	}
	if fired {
		d.publishState()
	}
}

func (d *dispatcher) dispatchMinute(ctx context.Context, w entity.Wake) {
	users := d.state.Slots[w.Minute]
	minute, err := domain.ParseMinuteKey(w.Minute)
	if err != nil {
		d.log.Error().Err(err).Msg("bad minute key in active bucket")
		return
	}

	hour := d.state.Hour
	d.log.Info().
		Int("hour", hour).
		Str("minute", w.Minute).
		Int("users", len(users)).
		Msg("dispatching prompts")

	for _, userID := range users {
		d.deliveries.Add(1)
		go func(userID int64) {
			defer d.deliveries.Done()
			d.deliver(ctx, hour, minute, userID)
		}(userID)
	}
}

func (d *dispatcher) deliver(ctx context.Context, hour, minute int, userID int64) {
	profile, err := d.dm.Profile().GetByID(ctx, userID)
	if err != nil {
		d.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to load profile for prompt")
		return
	}
	if profile == nil {
		d.log.Debug().Int64("user_id", userID).Msg("profile gone, nothing to send")
		return
	}

	label := domain.LocalTime{Hour: domain.LocalHour(hour, profile.TZ), Minute: minute}.String()
	text, ok := profile.Prompts[label]
	if !ok {
		d.log.Debug().Int64("user_id", userID).Str("local_time", label).Msg("no prompt at this time, nothing to send")
		return
	}

	if err := d.messenger.SendDirectMessage(ctx, profile, text); err != nil {
		d.metrics.PromptDeliveryFailed()
		d.log.Warn().Err(err).Int64("user_id", userID).Str("local_time", label).Msg("prompt delivery failed")
		return
	}

	d.metrics.PromptSent()
	d.log.Debug().Int64("user_id", userID).Str("local_time", label).Msg("prompt sent")
}

func (d *dispatcher) publishState() {
	cp := d.state.Clone()
	d.snapshotMu.Lock()
	d.snapshot = cp
	d.snapshotMu.Unlock()
}

// buildWakes lists one instant per occupied minute of the hour starting at
// hourStart, in the home zone and ascending order.
func buildWakes(hourStart time.Time, bucket *entity.HourBucket, home *time.Location) []entity.Wake {
	minutes := bucket.Minutes()
	wakes := make([]entity.Wake, 0, len(minutes))
	for _, key := range minutes {
		m, err := domain.ParseMinuteKey(key)
		if err != nil {
			continue
		}
		at := hourStart.Add(time.Duration(m) * time.Minute).In(home)
		wakes = append(wakes, entity.Wake{At: at, Minute: key})
	}
	return wakes
}

func modeFor(wakes []entity.Wake) entity.ScheduleMode {
	if len(wakes) == 0 {
		return entity.ModeEmpty
	}
	return entity.ModeActive
}

func stopTimer(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}
