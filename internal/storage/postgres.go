package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourname/moodjournal/internal"
)

const schema = `
CREATE TABLE IF NOT EXISTS emotion_records (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	date        TEXT NOT NULL,
	emotion_id  TEXT NOT NULL,
	activity_id TEXT NOT NULL,
	intensity   INT NOT NULL,
	ts          BIGINT NOT NULL,
	note        TEXT NOT NULL DEFAULT '',
	weather     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_emotion_records_user_ts ON emotion_records (user_id, ts DESC);
CREATE TABLE IF NOT EXISTS activity_catalogs (
	user_id    TEXT PRIMARY KEY,
	activities JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS user_profiles (
	user_id TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	age     INT
);`

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(ctx context.Context, dsn string, logger internal.Logger) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

// Migrate creates the tables if they are missing.
func (p *PostgresStorage) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		p.logger.Errorf("failed to apply schema: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- RecordRepository ---
const insertRecord = `INSERT INTO emotion_records (id, user_id, date, emotion_id, activity_id, intensity, ts, note, weather) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (p *PostgresStorage) AppendRecord(ctx context.Context, rec *internal.EmotionRecord) error {
	_, err := p.pool.Exec(ctx, insertRecord,
		rec.ID, rec.UserID, rec.Date, string(rec.EmotionID), rec.ActivityID, rec.Intensity, rec.Timestamp, rec.Note, rec.Weather)
	if err != nil {
		p.logger.Errorf("failed to insert record: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListRecords(ctx context.Context, userID string) ([]internal.EmotionRecord, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, emotion_id, activity_id, intensity, ts, note, weather FROM emotion_records WHERE user_id = $1 ORDER BY ts DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query records: %v", err)
		return nil, err
	}
	defer rows.Close()

	recs := []internal.EmotionRecord{}
	for rows.Next() {
		var r internal.EmotionRecord
		var emotion string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &emotion, &r.ActivityID, &r.Intensity, &r.Timestamp, &r.Note, &r.Weather); err != nil {
			p.logger.Errorf("failed to scan record: %v", err)
			return nil, err
		}
		r.EmotionID = internal.EmotionID(emotion)
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (p *PostgresStorage) DeleteRecord(ctx context.Context, userID, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM emotion_records WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		p.logger.Errorf("failed to delete record: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) ReplaceRecords(ctx context.Context, userID string, records []internal.EmotionRecord) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM emotion_records WHERE user_id = $1`, userID); err != nil {
		p.logger.Errorf("failed to clear records: %v", err)
		return err
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(insertRecord, r.ID, userID, r.Date, string(r.EmotionID), r.ActivityID, r.Intensity, r.Timestamp, r.Note, r.Weather)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		p.logger.Errorf("failed to insert records: %v", err)
		return err
	}
	return tx.Commit(ctx)
}

// --- ActivityRepository ---
func (p *PostgresStorage) ListActivities(ctx context.Context, userID string) ([]internal.Activity, error) {
	var acts []internal.Activity
	err := p.pool.QueryRow(ctx, `SELECT activities FROM activity_catalogs WHERE user_id = $1`, userID).Scan(&acts)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		p.logger.Errorf("failed to load activities: %v", err)
		return nil, err
	}
	return acts, nil
}

func (p *PostgresStorage) SaveActivities(ctx context.Context, userID string, activities []internal.Activity) error {
	if activities == nil {
		activities = []internal.Activity{}
	}
	_, err := p.pool.Exec(ctx, `INSERT INTO activity_catalogs (user_id, activities) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET activities = EXCLUDED.activities`, userID, activities)
	if err != nil {
		p.logger.Errorf("failed to save activities: %v", err)
		return err
	}
	return nil
}

// --- ProfileRepository ---
func (p *PostgresStorage) GetProfile(ctx context.Context, userID string) (*internal.UserProfile, error) {
	var prof internal.UserProfile
	err := p.pool.QueryRow(ctx, `SELECT name, age FROM user_profiles WHERE user_id = $1`, userID).Scan(&prof.Name, &prof.Age)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		p.logger.Errorf("failed to load profile: %v", err)
		return nil, err
	}
	return &prof, nil
}

func (p *PostgresStorage) SaveProfile(ctx context.Context, userID string, profile *internal.UserProfile) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO user_profiles (user_id, name, age) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET name = EXCLUDED.name, age = EXCLUDED.age`, userID, profile.Name, profile.Age)
	if err != nil {
		p.logger.Errorf("failed to save profile: %v", err)
		return err
	}
	return nil
}

// --- Compile-time assertions ---
var _ Store = (*PostgresStorage)(nil)
