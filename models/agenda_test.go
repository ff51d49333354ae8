package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestShiftTimesForward(t *testing.T) {
	agenda := Agenda{
		Sessions: []Session{
			{
				Title:         "Opening",
				StartDateTime: at(9, 0),
				EndDateTime:   at(10, 0),
				SubSessions: []SubSession{
					{Title: "Welcome", StartDateTime: at(9, 0), EndDateTime: at(9, 15)},
					{Title: "Keynote", StartDateTime: at(9, 15), EndDateTime: at(10, 0)},
				},
			},
			{
				Title:         "Workshops",
				StartDateTime: at(10, 30),
				EndDateTime:   at(12, 0),
			},
		},
	}

	agenda.ShiftTimes(30)

	assert.Equal(t, at(9, 30), agenda.Sessions[0].StartDateTime)
	assert.Equal(t, at(10, 30), agenda.Sessions[0].EndDateTime)
	assert.Equal(t, at(9, 30), agenda.Sessions[0].SubSessions[0].StartDateTime)
	assert.Equal(t, at(9, 45), agenda.Sessions[0].SubSessions[0].EndDateTime)
	assert.Equal(t, at(9, 45), agenda.Sessions[0].SubSessions[1].StartDateTime)
	assert.Equal(t, at(11, 0), agenda.Sessions[1].StartDateTime)
	assert.Equal(t, at(12, 30), agenda.Sessions[1].EndDateTime)
}

func TestShiftTimesBackward(t *testing.T) {
	agenda := Agenda{
		Sessions: []Session{{StartDateTime: at(9, 0), EndDateTime: at(10, 0)}},
	}

	agenda.ShiftTimes(-15)

	assert.Equal(t, at(8, 45), agenda.Sessions[0].StartDateTime)
	assert.Equal(t, at(9, 45), agenda.Sessions[0].EndDateTime)
}

func TestShiftTimesEmptyAgenda(t *testing.T) {
	agenda := Agenda{}
	agenda.ShiftTimes(60)
	assert.Empty(t, agenda.Sessions)
}
