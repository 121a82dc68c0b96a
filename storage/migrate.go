package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate bootstraps the schema. Statements are idempotent so this runs on
// every startup.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id TEXT PRIMARY KEY,
			current_streak INT NOT NULL DEFAULT 0,
			longest_streak INT NOT NULL DEFAULT 0,
			total_words_added INT NOT NULL DEFAULT 0,
			total_sentences_scored INT NOT NULL DEFAULT 0,
			daily_goal INT NOT NULL DEFAULT 5,
			weekly_goal INT NOT NULL DEFAULT 30,
			streak_freezes_available INT NOT NULL DEFAULT 2,
			last_activity_date TEXT,
			activity_history JSONB NOT NULL DEFAULT '{}'::jsonb,
			achievements JSONB NOT NULL DEFAULT '[]'::jsonb,
			cefr_level TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS words (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			cefr_level TEXT,
			word_type TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			next_review_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_words_user_id ON words (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_words_next_review ON words (user_id, next_review_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	log.Println("Database schema is up to date")
	return nil
}
