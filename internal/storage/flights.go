package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// FlightEntry is a stored landing attempt.
type FlightEntry struct {
	ID     int64
	GameID string
	core.FlightRecord
	CreatedAt time.Time
}

// FlightStats aggregates the attempts of one game.
type FlightStats struct {
	GameID     string
	Flights    int
	Landings   int
	ByStatus   map[string]int
	BestFuel   float64 // Most fuel left on a landing
	TotalTicks int64
}

// LandingRate returns the fraction of flights that landed.
func (f FlightStats) LandingRate() float64 {
	if f.Flights == 0 {
		return 0
	}
	return float64(f.Landings) / float64(f.Flights)
}

// SaveFlight records a finished attempt.
func (s *Store) SaveFlight(gameID string, rec core.FlightRecord) (int64, error) {
	var speed, limit sql.NullFloat64
	if rec.SpeedCrash {
		speed = sql.NullFloat64{Float64: rec.CrashSpeed, Valid: true}
		limit = sql.NullFloat64{Float64: rec.CrashLimit, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO flights (game_id, level, status, fuel, crash_speed, crash_limit, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gameID, rec.Level, rec.Status, rec.Fuel, speed, limit, rec.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save flight: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentFlights retrieves the most recent attempts for a game, newest first.
func (s *Store) RecentFlights(gameID string, limit int) ([]FlightEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level, status, fuel, crash_speed, crash_limit, ticks, created_at
		 FROM flights
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	defer rows.Close()

	var entries []FlightEntry
	for rows.Next() {
		var e FlightEntry
		var speed, limit sql.NullFloat64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Level, &e.Status, &e.Fuel,
			&speed, &limit, &e.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan flight: %w", err)
		}
		if speed.Valid && limit.Valid {
			e.SpeedCrash = true
			e.CrashSpeed = speed.Float64
			e.CrashLimit = limit.Float64
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetFlightStats counts attempts per terminal status for a game.
func (s *Store) GetFlightStats(gameID string) (*FlightStats, error) {
	stats := &FlightStats{GameID: gameID, ByStatus: make(map[string]int)}

	rows, err := s.db.Query(
		`SELECT status, COUNT(*), COALESCE(MAX(fuel), 0), COALESCE(SUM(ticks), 0)
		 FROM flights
		 WHERE game_id = ?
		 GROUP BY status`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get flight stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		var maxFuel float64
		var ticks int64
		if err := rows.Scan(&status, &count, &maxFuel, &ticks); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Flights += count
		stats.TotalTicks += ticks
		if status == "landed" {
			stats.Landings = count
			stats.BestFuel = maxFuel
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
