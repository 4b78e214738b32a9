package gormrepo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"pawtrail/internal/domain/puzzle"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "pgx duplicate key message",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "puzzle_progress_pkey" (SQLSTATE 23505)`),
			want: true,
		},
		{
			name: "wrapped driver error",
			err:  fmt.Errorf("create progress: %w", errors.New("UNIQUE constraint failed: puzzle_progress.puzzle_id")),
			want: true,
		},
		{
			name: "translated gorm sentinel",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("isUniqueViolation(%v)=%v want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestProgressModelRoundTrip(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p := puzzle.NewProgress("lost_collar", started)
	p.RecordDiscovery("working_key")
	p.RecordFailure([]string{"rusty_key", "rusty_key"})
	p.Attempts = 3
	p.UsedHints = 1

	got, err := decodeProgress(encodeProgress(p))
	if err != nil {
		t.Fatalf("decodeProgress: %v", err)
	}
	if got.PuzzleID != p.PuzzleID || got.State != p.State {
		t.Fatalf("identity fields lost: %+v", got)
	}
	if got.Attempts != 3 || got.UsedHints != 1 {
		t.Fatalf("counters lost: %+v", got)
	}
	if !got.HasDiscovered("working_key") {
		t.Fatal("discovered combination lost in column encoding")
	}
	if len(got.FailedAttempts) != 1 || len(got.FailedAttempts[0]) != 2 {
		t.Fatalf("failed attempts lost: %v", got.FailedAttempts)
	}
	if !got.StartTime.Equal(started) {
		t.Fatalf("start time = %v, want %v", got.StartTime, started)
	}
}
