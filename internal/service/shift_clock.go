package service

import (
	"fmt"
	"sync"
	"time"

	apperrors "schedulehq-backend/internal/errors"
	"schedulehq-backend/internal/repository"
)

// ShiftClock classifies a time of day into a configured shift-type bucket
// (breakfast/lunch/dinner/overnight). Windows are loaded once from storage
// and refreshed when settings change; classification itself is a pure
// lookup.
type ShiftClock struct {
	shiftTypes repository.ShiftTypeRepositoryInterface

	mu      sync.RWMutex
	windows []bucketWindow
}

// bucketWindow is a [start, end) window in minutes from midnight. A window
// whose end is not after its start wraps past midnight.
type bucketWindow struct {
	key      string
	startMin int
	endMin   int
	wraps    bool
}

// NewShiftClock creates a shift clock; call Refresh before classifying.
func NewShiftClock(shiftTypes repository.ShiftTypeRepositoryInterface) *ShiftClock {
	return &ShiftClock{shiftTypes: shiftTypes}
}

// Refresh reloads the configured shift-type windows from storage. It also
// rejects configurations with overlapping windows.
func (c *ShiftClock) Refresh() error {
	types, err := c.shiftTypes.GetAll()
	if err != nil {
		return fmt.Errorf("load shift types: %w", err)
	}

	windows := make([]bucketWindow, 0, len(types))
	for _, st := range types {
		start, err := ParseTimeOfDay(st.WindowStart)
		if err != nil {
			return fmt.Errorf("shift type %q window start: %w", st.Key, err)
		}
		end, err := ParseTimeOfDay(st.WindowEnd)
		if err != nil {
			return fmt.Errorf("shift type %q window end: %w", st.Key, err)
		}
		windows = append(windows, bucketWindow{
			key:      st.Key,
			startMin: start.Minutes(),
			endMin:   end.Minutes(),
			wraps:    end.Minutes() <= start.Minutes(),
		})
	}

	if err := checkWindowOverlap(windows); err != nil {
		return err
	}

	c.mu.Lock()
	c.windows = windows
	c.mu.Unlock()
	return nil
}

// Classify maps a time of day to a shift-type bucket key. The second
// return is false when no configured window matches.
func (c *ShiftClock) Classify(hour, minute int) (string, bool) {
	m := hour*60 + minute

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, w := range c.windows {
		if w.contains(m) {
			return w.key, true
		}
	}
	return "", false
}

// ClassifyTime maps an instant's time of day to a shift-type bucket key
func (c *ShiftClock) ClassifyTime(t time.Time) (string, bool) {
	return c.Classify(t.Hour(), t.Minute())
}

func (w bucketWindow) contains(m int) bool {
	if w.wraps {
		return m >= w.startMin || m < w.endMin
	}
	return m >= w.startMin && m < w.endMin
}

func checkWindowOverlap(windows []bucketWindow) error {
	const dayMinutes = 24 * 60
	for i, a := range windows {
		for _, b := range windows[i+1:] {
			for m := 0; m < dayMinutes; m++ {
				if a.contains(m) && b.contains(m) {
					return fmt.Errorf("%w: %s and %s", apperrors.ErrShiftTypeWindowClash, a.key, b.key)
				}
			}
		}
	}
	return nil
}
