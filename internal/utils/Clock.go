package utils

import "time"

type Clock interface {
	Now() time.Time
	// Today returns the current calendar day.
	Today() Date
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

func (s SystemClock) Today() Date {
	return DateOf(time.Now())
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) Today() Date {
	return DateOf(m.FixedNow)
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}
