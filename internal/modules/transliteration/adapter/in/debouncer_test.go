package in_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	translitin "japa/internal/modules/transliteration/adapter/in"
	"japa/internal/modules/transliteration/dto"
)

type fakeUsecase struct {
	mu    sync.Mutex
	calls []string
	delay time.Duration
	fail  bool
}

func (f *fakeUsecase) Transliterate(ctx context.Context, input dto.TransliterateInput) (dto.TransliterateOutput, error) {
	f.mu.Lock()
	f.calls = append(f.calls, input.Text)
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return dto.TransliterateOutput{}, ctx.Err()
		}
	}
	if f.fail {
		return dto.TransliterateOutput{}, errors.New("offline")
	}
	return dto.TransliterateOutput{Text: input.Text, NativeName: "<" + input.Text + ">"}, nil
}

func (f *fakeUsecase) Doctor(context.Context) ([]dto.DoctorResult, error) { return nil, nil }

func (f *fakeUsecase) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type recorder struct {
	mu      sync.Mutex
	results []string
}

func (r *recorder) apply(out dto.TransliterateOutput) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, out.NativeName)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.results...)
}

func TestDebouncerOnlyRunsLatestInput(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{}
	rec := &recorder{}
	d := translitin.NewDebouncer(uc, 30*time.Millisecond, zerolog.Nop())
	defer d.Stop()

	for _, text := range []string{"S", "Si", "Sit", "Sita"} {
		d.Submit(dto.TransliterateInput{Text: text, Language: "Hindi"}, rec.apply)
	}
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"<Sita>"}, rec.snapshot())
	assert.Equal(t, 1, uc.callCount())
}

func TestDebouncerDiscardsSupersededInFlightResult(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{delay: 50 * time.Millisecond}
	rec := &recorder{}
	d := translitin.NewDebouncer(uc, time.Millisecond, zerolog.Nop())
	defer d.Stop()

	d.Submit(dto.TransliterateInput{Text: "Ram", Language: "Hindi"}, rec.apply)
	require.Eventually(t, func() bool { return uc.callCount() == 1 }, time.Second, time.Millisecond)
	d.Submit(dto.TransliterateInput{Text: "Radha", Language: "Hindi"}, rec.apply)

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"<Radha>"}, rec.snapshot())
}

func TestDebouncerFailureKeepsPreviousValue(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{fail: true}
	rec := &recorder{}
	d := translitin.NewDebouncer(uc, time.Millisecond, zerolog.Nop())
	defer d.Stop()

	d.Submit(dto.TransliterateInput{Text: "Ram", Language: "Hindi"}, rec.apply)
	require.Eventually(t, func() bool { return uc.callCount() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerStopAndBlankInput(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{}
	rec := &recorder{}
	d := translitin.NewDebouncer(uc, 20*time.Millisecond, zerolog.Nop())

	d.Submit(dto.TransliterateInput{Text: "Ram", Language: "Hindi"}, rec.apply)
	d.Submit(dto.TransliterateInput{Text: "  ", Language: "Hindi"}, rec.apply)
	d.Stop()
	d.Submit(dto.TransliterateInput{Text: "Krishna", Language: "Hindi"}, rec.apply)

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, uc.callCount())
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerSubmitCannotOvertakeDelivery(t *testing.T) {
	t.Parallel()
	d := translitin.NewDebouncer(&fakeUsecase{}, time.Millisecond, zerolog.Nop())
	t.Cleanup(d.Stop)

	delivering := make(chan struct{})
	release := make(chan struct{})
	d.Submit(dto.TransliterateInput{Text: "ram", Language: "Hindi"}, func(dto.TransliterateOutput) {
		close(delivering)
		<-release
	})
	select {
	case <-delivering:
	case <-time.After(time.Second):
		t.Fatal("first result was never delivered")
	}

	submitted := make(chan struct{})
	go func() {
		d.Submit(dto.TransliterateInput{Text: "sita", Language: "Hindi"}, func(dto.TransliterateOutput) {})
		close(submitted)
	}()
	select {
	case <-submitted:
		t.Fatal("a newer submission completed while an older result was being applied")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-submitted:
	case <-time.After(time.Second):
		t.Fatal("submission blocked after delivery finished")
	}
}
