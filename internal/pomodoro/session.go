package pomodoro

import "time"

type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

// sessionsPerLongBreak is the work-session count that earns a long break.
const sessionsPerLongBreak = 4

type Durations struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

func DefaultDurations() Durations {
	return Durations{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

func (d Durations) For(m Mode) time.Duration {
	switch m {
	case ModeShortBreak:
		return d.ShortBreak
	case ModeLongBreak:
		return d.LongBreak
	default:
		return d.Work
	}
}

// Session is the countdown state machine. It is advanced one second at a
// time by Tick and never runs its own timer; the caller owns the clock.
type Session struct {
	Mode                  Mode
	RemainingSec          int
	Running               bool
	CompletedWorkSessions int
	Durations             Durations
}

func NewSession(d Durations) *Session {
	return &Session{
		Mode:         ModeWork,
		RemainingSec: int(d.Work.Seconds()),
		Durations:    d,
	}
}

// TickResult reports what a single tick did. When Finished is set the
// session transitioned to NextMode and stopped; for a finished work session
// CreditedMinutes carries the focus minutes just completed.
type TickResult struct {
	Finished        bool
	FinishedMode    Mode
	NextMode        Mode
	CreditedMinutes int
}

// Tick advances the countdown by one second. It is a no-op while paused or
// already at zero.
func (s *Session) Tick() TickResult {
	if !s.Running || s.RemainingSec <= 0 {
		return TickResult{}
	}
	s.RemainingSec--
	if s.RemainingSec > 0 {
		return TickResult{}
	}
	return s.finishSession()
}

func (s *Session) finishSession() TickResult {
	res := TickResult{Finished: true, FinishedMode: s.Mode}
	s.Running = false
	if s.Mode == ModeWork {
		s.CompletedWorkSessions++
		res.CreditedMinutes = int(s.Durations.Work.Minutes())
		if s.CompletedWorkSessions%sessionsPerLongBreak == 0 {
			res.NextMode = ModeLongBreak
		} else {
			res.NextMode = ModeShortBreak
		}
	} else {
		res.NextMode = ModeWork
	}
	s.Mode = res.NextMode
	s.RemainingSec = int(s.Durations.For(res.NextMode).Seconds())
	return res
}

// Toggle flips the running flag. Meaningless at zero remaining, which only
// occurs transiently inside Tick.
func (s *Session) Toggle() {
	if s.RemainingSec > 0 {
		s.Running = !s.Running
	}
}

// Reset restores the initial state: work mode, full duration, stopped,
// session counter cleared.
func (s *Session) Reset() {
	s.Mode = ModeWork
	s.RemainingSec = int(s.Durations.Work.Seconds())
	s.Running = false
	s.CompletedWorkSessions = 0
}

// SelectMode stops the countdown and switches to the chosen mode at its
// full duration. The completed-session counter is preserved.
func (s *Session) SelectMode(m Mode) {
	if !m.IsValid() {
		return
	}
	s.Running = false
	s.Mode = m
	s.RemainingSec = int(s.Durations.For(m).Seconds())
}

// ElapsedFraction is the share of the current mode's duration already spent,
// in [0, 1].
func (s *Session) ElapsedFraction() float64 {
	total := int(s.Durations.For(s.Mode).Seconds())
	if total <= 0 {
		return 0
	}
	return float64(total-s.RemainingSec) / float64(total)
}
