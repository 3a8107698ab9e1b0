package engine

import "time"

// TimeHandler tracks the wall-clock budget of one decision.
type TimeHandler struct {
	start       time.Time
	timeForMove time.Time
	now         func() time.Time
}

func newTimeHandler(budget time.Duration, now func() time.Time) *TimeHandler {
	if now == nil {
		now = time.Now
	}
	th := &TimeHandler{now: now}
	th.start = now()
	th.timeForMove = th.start.Add(budget)
	return th
}

// TimeStatus reports true once the budget is used up.
func (th *TimeHandler) TimeStatus() bool {
	return !th.now().Before(th.timeForMove)
}

// Elapsed returns the time spent since the decision started.
func (th *TimeHandler) Elapsed() time.Duration { return th.now().Sub(th.start) }
