package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mavpath/advisor-backend/internal/model"
)

var ErrPreferencesNotFound = errors.New("no preference profile for student")

// PreferenceRepository handles preference profile data access. Time blocks
// are stored as JSONB since they are only ever read and written whole.
type PreferenceRepository struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

// GetByStudentID retrieves a student's preference profile.
func (r *PreferenceRepository) GetByStudentID(ctx context.Context, studentID int) (*model.PreferenceProfile, error) {
	p := &model.PreferenceProfile{StudentID: studentID}
	var blocksJSON []byte

	err := r.pool.QueryRow(ctx,
		`SELECT preferred_days, time_blocks, interests, completed_stage, updated_at
		 FROM preferences WHERE student_id = $1`, studentID,
	).Scan(&p.PreferredDays, &blocksJSON, &p.Interests, &p.CompletedStage, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}

	if len(blocksJSON) > 0 {
		if err := json.Unmarshal(blocksJSON, &p.TimeBlocks); err != nil {
			return nil, fmt.Errorf("decode time blocks: %w", err)
		}
	}
	return p, nil
}

// Upsert saves a student's preference profile, replacing any existing row.
func (r *PreferenceRepository) Upsert(ctx context.Context, p *model.PreferenceProfile) error {
	blocksJSON, err := json.Marshal(p.TimeBlocks)
	if err != nil {
		return fmt.Errorf("encode time blocks: %w", err)
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO preferences (student_id, preferred_days, time_blocks, interests, completed_stage)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (student_id) DO UPDATE SET
		   preferred_days = EXCLUDED.preferred_days,
		   time_blocks = EXCLUDED.time_blocks,
		   interests = EXCLUDED.interests,
		   completed_stage = EXCLUDED.completed_stage,
		   updated_at = CURRENT_TIMESTAMP
		 RETURNING updated_at`,
		p.StudentID, p.PreferredDays, blocksJSON, p.Interests, p.CompletedStage,
	).Scan(&p.UpdatedAt)
}
