package dto

import (
	"database/sql"
	"time"

	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
)

func parseDay(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, gerr.InvalidRequest("%s is required", field)
	}
	t, err := period.ParseDay(s)
	if err != nil {
		return time.Time{}, gerr.InvalidRequest("invalid %s %q", field, s)
	}
	return t, nil
}

func formatDay(t time.Time) string {
	return t.Format(period.DayLayout)
}

func formatNullDay(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := formatDay(t.Time)
	return &s
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
