package competitions_dto

import (
	"time"

	competitions_models "sportsdata/internal/features/competitions/models"

	"github.com/google/uuid"
)

type CreateLeagueRequestDTO struct {
	Name    string `json:"name"    binding:"required,min=1,max=128"`
	Country string `json:"country" binding:"required,min=1,max=64"`
	LogoURL string `json:"logoUrl" binding:"omitempty,url"`
}

type UpdateLeagueRequestDTO struct {
	Name    *string `json:"name"    binding:"omitempty,min=1,max=128"`
	Country *string `json:"country" binding:"omitempty,min=1,max=64"`
	LogoURL *string `json:"logoUrl" binding:"omitempty,url"`
}

type GetLeaguesRequestDTO struct {
	Country string `form:"country"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

type GetLeaguesResponseDTO struct {
	Leagues []*competitions_models.League `json:"leagues"`
	Total   int64                         `json:"total"`
}

type CreateSeasonRequestDTO struct {
	Year      int  `json:"year"      binding:"required,min=1800,max=2200"`
	IsCurrent bool `json:"isCurrent"`
}

type GetSeasonsResponseDTO struct {
	Seasons []*competitions_models.Season `json:"seasons"`
}

type CreateTeamRequestDTO struct {
	Name            string     `json:"name"            binding:"required,min=1,max=128"`
	Code            string     `json:"code"            binding:"omitempty,max=8"`
	LogoURL         string     `json:"logoUrl"         binding:"omitempty,url"`
	CurrentLeagueID *uuid.UUID `json:"currentLeagueId"`
}

type UpdateTeamRequestDTO struct {
	Name            *string    `json:"name"            binding:"omitempty,min=1,max=128"`
	Code            *string    `json:"code"            binding:"omitempty,max=8"`
	LogoURL         *string    `json:"logoUrl"         binding:"omitempty,url"`
	CurrentLeagueID *uuid.UUID `json:"currentLeagueId"`
}

type GetTeamsRequestDTO struct {
	LeagueID *uuid.UUID `form:"leagueId"`
	Limit    int        `form:"limit"`
	Offset   int        `form:"offset"`
}

type GetTeamsResponseDTO struct {
	Teams []*competitions_models.Team `json:"teams"`
	Total int64                       `json:"total"`
}

type CreatePlayerRequestDTO struct {
	Name        string     `json:"name"        binding:"required,min=1,max=128"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Nationality string     `json:"nationality" binding:"omitempty,max=64"`
	Position    string     `json:"position"    binding:"omitempty,max=32"`
	HeightCm    *int       `json:"heightCm"    binding:"omitempty,min=100,max=250"`
	WeightKg    *int       `json:"weightKg"    binding:"omitempty,min=30,max=200"`
	TeamID      *uuid.UUID `json:"teamId"`
}

type UpdatePlayerRequestDTO struct {
	Name        *string    `json:"name"        binding:"omitempty,min=1,max=128"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Nationality *string    `json:"nationality" binding:"omitempty,max=64"`
	Position    *string    `json:"position"    binding:"omitempty,max=32"`
	HeightCm    *int       `json:"heightCm"    binding:"omitempty,min=100,max=250"`
	WeightKg    *int       `json:"weightKg"    binding:"omitempty,min=30,max=200"`
}

type AssignPlayerToTeamRequestDTO struct {
	TeamID *uuid.UUID `json:"teamId"`
}

type GetPlayersRequestDTO struct {
	TeamID      *uuid.UUID `form:"teamId"`
	Nationality string     `form:"nationality"`
	Position    string     `form:"position"`
	Limit       int        `form:"limit"`
	Offset      int        `form:"offset"`
}

type GetPlayersResponseDTO struct {
	Players []*competitions_models.Player `json:"players"`
	Total   int64                         `json:"total"`
}

type CreateMatchRequestDTO struct {
	SeasonID   uuid.UUID `json:"seasonId"   binding:"required"`
	HomeTeamID uuid.UUID `json:"homeTeamId" binding:"required"`
	AwayTeamID uuid.UUID `json:"awayTeamId" binding:"required"`
	MatchDate  time.Time `json:"matchDate"  binding:"required"`
	Venue      string    `json:"venue"      binding:"omitempty,max=128"`
}

type UpdateMatchScoreRequestDTO struct {
	HomeScore int  `json:"homeScore" binding:"min=0"`
	AwayScore int  `json:"awayScore" binding:"min=0"`
	IsFinal   bool `json:"isFinal"`
}

type UpdateMatchStatusRequestDTO struct {
	Status    competitions_models.MatchStatus `json:"status"    binding:"required"`
	MatchDate *time.Time                      `json:"matchDate"`
}

type GetMatchesRequestDTO struct {
	SeasonID *uuid.UUID                      `form:"seasonId"`
	TeamID   *uuid.UUID                      `form:"teamId"`
	Status   competitions_models.MatchStatus `form:"status"`
	DateFrom *time.Time                      `form:"dateFrom" time_format:"2006-01-02"`
	DateTo   *time.Time                      `form:"dateTo"   time_format:"2006-01-02"`
	Limit    int                             `form:"limit"`
	Offset   int                             `form:"offset"`
}

type GetMatchesResponseDTO struct {
	Matches []*competitions_models.Match `json:"matches"`
	Total   int64                        `json:"total"`
}
