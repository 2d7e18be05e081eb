package convo

import (
	"database/sql"
	"fmt"
)

// SQLiteStore persists exchanges to the history table.
type SQLiteStore struct {
	DB *sql.DB
}

// Append inserts one exchange.
func (s *SQLiteStore) Append(e Exchange) error {
	_, err := s.DB.Exec(
		"INSERT INTO history (user_text, agent_text) VALUES (?, ?)",
		e.UserText, e.AgentText,
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Load returns the most recent `limit` exchanges in chronological order
// (oldest first).
func (s *SQLiteStore) Load(limit int) ([]Exchange, error) {
	rows, err := s.DB.Query(
		"SELECT user_text, agent_text FROM history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var results []Exchange
	for rows.Next() {
		var e Exchange
		if err := rows.Scan(&e.UserText, &e.AgentText); err != nil {
			continue
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	// Reverse to chronological order.
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}
