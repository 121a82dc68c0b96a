package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lingoTrackAPI/internal/profile"
	"lingoTrackAPI/internal/word"
)

const profileColumns = `user_id, current_streak, longest_streak, total_words_added,
	total_sentences_scored, daily_goal, weekly_goal, streak_freezes_available,
	last_activity_date, activity_history, achievements, cefr_level, created_at, updated_at`

type PostgresProfileStore struct {
	db *pgxpool.Pool
}

func NewPostgresProfileStore(db *pgxpool.Pool) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.UserID,
		&p.CurrentStreak,
		&p.LongestStreak,
		&p.TotalWordsAdded,
		&p.TotalSentencesScored,
		&p.DailyGoal,
		&p.WeeklyGoal,
		&p.StreakFreezesAvailable,
		&p.LastActivityDate,
		&p.ActivityHistory,
		&p.Achievements,
		&p.CEFRLevel,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.ActivityHistory == nil {
		p.ActivityHistory = map[string]profile.DayActivity{}
	}
	return p, nil
}

func (s *PostgresProfileStore) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1`, profileColumns)

	p, err := scanProfile(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s *PostgresProfileStore) Upsert(ctx context.Context, userID string) (*profile.Profile, error) {
	query := `
	INSERT INTO profiles (user_id, daily_goal, weekly_goal, streak_freezes_available, activity_history, achievements, created_at, updated_at)
	VALUES ($1, $2, $3, $4, '{}', '[]', NOW(), NOW())
	ON CONFLICT (user_id) DO NOTHING
	`

	_, err := s.db.Exec(ctx, query, userID,
		profile.DefaultDailyGoal, profile.DefaultWeeklyGoal, profile.DefaultStreakFreezes)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return s.Get(ctx, userID)
}

func (s *PostgresProfileStore) Update(ctx context.Context, userID string, upd *ProfileUpdate) (*profile.Profile, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{userID}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.CurrentStreak != nil {
		add("current_streak", *upd.CurrentStreak)
	}
	if upd.LongestStreak != nil {
		add("longest_streak", *upd.LongestStreak)
	}
	if upd.TotalWordsAdded != nil {
		add("total_words_added", *upd.TotalWordsAdded)
	}
	if upd.TotalSentencesScored != nil {
		add("total_sentences_scored", *upd.TotalSentencesScored)
	}
	if upd.DailyGoal != nil {
		add("daily_goal", *upd.DailyGoal)
	}
	if upd.WeeklyGoal != nil {
		add("weekly_goal", *upd.WeeklyGoal)
	}
	if upd.StreakFreezesAvailable != nil {
		add("streak_freezes_available", *upd.StreakFreezesAvailable)
	}
	if upd.LastActivityDate != nil {
		add("last_activity_date", *upd.LastActivityDate)
	}
	if upd.ActivityHistory != nil {
		add("activity_history", upd.ActivityHistory)
	}
	if upd.Achievements != nil {
		add("achievements", upd.Achievements)
	}

	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE user_id = $1 RETURNING %s`,
		strings.Join(set, ", "), profileColumns)

	p, err := scanProfile(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return p, nil
}

type PostgresWordStore struct {
	db *pgxpool.Pool
}

func NewPostgresWordStore(db *pgxpool.Pool) *PostgresWordStore {
	return &PostgresWordStore{db: db}
}

func (s *PostgresWordStore) Query(ctx context.Context, userID string) ([]*word.Record, error) {
	query := `
	SELECT id, user_id, cefr_level, word_type, created_at, next_review_at
	FROM words
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var records []*word.Record
	for rows.Next() {
		rec := &word.Record{}
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.CEFRLevel, &rec.WordType, &rec.CreatedAt, &rec.NextReviewAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word records: %w", err)
	}

	return records, nil
}
