package competitions_models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "SCHEDULED"
	MatchStatusLive      MatchStatus = "LIVE"
	MatchStatusFinished  MatchStatus = "FINISHED"
	MatchStatusPostponed MatchStatus = "POSTPONED"
	MatchStatusCancelled MatchStatus = "CANCELLED"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusLive, MatchStatusFinished, MatchStatusPostponed, MatchStatusCancelled:
		return true
	}

	return false
}

type Match struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"     json:"id"`
	SeasonID   uuid.UUID   `gorm:"type:uuid;index;not null" json:"seasonId"`
	HomeTeamID uuid.UUID   `gorm:"type:uuid;index;not null" json:"homeTeamId"`
	AwayTeamID uuid.UUID   `gorm:"type:uuid;index;not null" json:"awayTeamId"`
	MatchDate  time.Time   `gorm:"index;not null"           json:"matchDate"`
	Status     MatchStatus `gorm:"index;not null"           json:"status"`
	HomeScore  *int        `json:"homeScore"`
	AwayScore  *int        `json:"awayScore"`
	Venue      string      `json:"venue"`
	CreatedAt  time.Time   `gorm:"not null"                 json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"not null"                 json:"updatedAt"`
}

func (Match) TableName() string {
	return "matches"
}

// SetFinalScore closes out a match. Only live or scheduled matches can be
// finished.
func (m *Match) SetFinalScore(homeScore int, awayScore int) error {
	if m.Status != MatchStatusLive && m.Status != MatchStatusScheduled {
		return errors.New("final score can only be set for scheduled or live matches")
	}

	m.HomeScore = &homeScore
	m.AwayScore = &awayScore
	m.Status = MatchStatusFinished

	return nil
}

func (m *Match) UpdateLiveScore(homeScore int, awayScore int) error {
	if m.Status == MatchStatusFinished || m.Status == MatchStatusCancelled {
		return errors.New("score cannot be updated after a match is finished or cancelled")
	}

	m.HomeScore = &homeScore
	m.AwayScore = &awayScore
	m.Status = MatchStatusLive

	return nil
}

func (m *Match) Postpone() error {
	if m.Status != MatchStatusScheduled {
		return errors.New("only scheduled matches can be postponed")
	}

	m.Status = MatchStatusPostponed

	return nil
}

func (m *Match) Cancel() error {
	if m.Status == MatchStatusFinished {
		return errors.New("finished matches cannot be cancelled")
	}

	m.Status = MatchStatusCancelled

	return nil
}

func (m *Match) Reschedule(newDate time.Time) error {
	if m.Status != MatchStatusScheduled && m.Status != MatchStatusPostponed {
		return errors.New("only scheduled or postponed matches can be rescheduled")
	}

	m.MatchDate = newDate
	m.Status = MatchStatusScheduled

	return nil
}
