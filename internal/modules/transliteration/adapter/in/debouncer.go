package in

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"japa/internal/modules/transliteration/dto"
	translitin "japa/internal/modules/transliteration/port/in"
)

// Debouncer runs a lookup once input has been quiet for the delay. Only the
// latest submission may deliver a result: a newer Submit stops the pending
// timer, cancels an in-flight call and discards whatever it returns.
type Debouncer struct {
	usecase translitin.Usecase
	delay   time.Duration
	log     zerolog.Logger

	mu      sync.Mutex
	seq     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	stopped bool
}

func NewDebouncer(usecase translitin.Usecase, delay time.Duration, log zerolog.Logger) *Debouncer {
	return &Debouncer{usecase: usecase, delay: delay, log: log}
}

// Submit schedules input. apply is called from a background goroutine with a
// successful result; failures are logged and apply is not called, so the
// caller keeps its previous value. Blank text only cancels pending work.
// apply runs under the debouncer's lock and must not call Submit or Stop.
func (d *Debouncer) Submit(input dto.TransliterateInput, apply func(dto.TransliterateOutput)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.seq++
	d.abortLocked()
	if strings.TrimSpace(input.Text) == "" {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() { d.run(ctx, seq, input, apply) })
}

// Stop cancels pending work. Later submissions are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.abortLocked()
}

func (d *Debouncer) run(ctx context.Context, seq uint64, input dto.TransliterateInput, apply func(dto.TransliterateOutput)) {
	out, err := d.usecase.Transliterate(ctx, input)

	// checked and delivered under one lock so a concurrent Submit either
	// supersedes this result or lands after it
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || seq != d.seq {
		d.log.Debug().Str("text", input.Text).Msg("transliteration superseded")
		return
	}
	if err != nil {
		d.log.Warn().Err(err).Str("text", input.Text).Str("language", input.Language).Msg("transliteration failed")
		return
	}
	apply(out)
}

func (d *Debouncer) abortLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
