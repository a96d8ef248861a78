package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillswap/internal/service/matching"
	"skillswap/pkg/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	ListVisibleProfiles(ctx context.Context, excludeUserID string) ([]*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) error
}

type repository struct {
	db db.SQLExecutor
}

func NewRepository(database db.SQLExecutor) Repository {
	return &repository{
		db: database,
	}
}

const profileColumns = `id, name, location, avatar_url, visibility, rating, created_at`

// GetProfile loads one profile with its skills, desired skills and slots
func (r *repository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	if err := r.loadChildren(ctx, []*Profile{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// ListVisibleProfiles returns every public profile except excludeUserID,
// oldest first so the candidate order is stable between calls.
func (r *repository) ListVisibleProfiles(ctx context.Context, excludeUserID string) ([]*Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE visibility = TRUE AND id <> $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}

	if err := r.loadChildren(ctx, profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateProfile writes the scalar fields and replaces the availability
// slots in a single transaction.
func (r *repository) UpdateProfile(ctx context.Context, p *Profile) error {
	return db.WithTransaction(ctx, r.db, sql.LevelReadCommitted, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE profiles
			SET name = $2, location = $3, avatar_url = $4, visibility = $5, updated_at = NOW()
			WHERE id = $1
		`, p.ID, p.Name, p.Location, p.AvatarURL, p.Visibility)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if rows == 0 {
			return ErrProfileNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM availability_slots WHERE user_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear availability: %w", err)
		}

		for _, slot := range p.Availability {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO availability_slots (id, user_id, weekday, start_time, end_time)
				VALUES ($1, $2, $3, $4, $5)
			`, uuid.NewString(), p.ID, slot.Weekday, slot.StartTime, slot.EndTime)
			if err != nil {
				return fmt.Errorf("insert availability: %w", err)
			}
		}
		return nil
	})
}

// loadChildren fills skills, desired skills and slots for all profiles with
// one query per child table.
func (r *repository) loadChildren(ctx context.Context, profiles []*Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	byID := make(map[string]*Profile, len(profiles))
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		byID[p.ID] = p
		ids[i] = p.ID
		p.Skills = []matching.OfferedSkill{}
		p.DesiredSkills = []matching.DesiredSkill{}
		p.Availability = []matching.AvailabilitySlot{}
	}

	if err := r.loadOfferedSkills(ctx, ids, byID); err != nil {
		return err
	}
	if err := r.loadDesiredSkills(ctx, ids, byID); err != nil {
		return err
	}
	return r.loadAvailability(ctx, ids, byID)
}

func (r *repository) loadOfferedSkills(ctx context.Context, ids []string, byID map[string]*Profile) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT us.user_id, s.id, s.name, us.proficiency
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = ANY($1)
		ORDER BY us.user_id, us.created_at, s.name
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var s matching.OfferedSkill
		if err := rows.Scan(&userID, &s.SkillID, &s.Name, &s.Proficiency); err != nil {
			return fmt.Errorf("scan skill: %w", err)
		}
		if p, ok := byID[userID]; ok {
			p.Skills = append(p.Skills, s)
		}
	}
	return rows.Err()
}

func (r *repository) loadDesiredSkills(ctx context.Context, ids []string, byID map[string]*Profile) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ds.user_id, s.id, s.name, ds.priority
		FROM desired_skills ds
		JOIN skills s ON s.id = ds.skill_id
		WHERE ds.user_id = ANY($1)
		ORDER BY ds.user_id, ds.created_at, s.name
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query desired skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var s matching.DesiredSkill
		if err := rows.Scan(&userID, &s.SkillID, &s.Name, &s.Priority); err != nil {
			return fmt.Errorf("scan desired skill: %w", err)
		}
		if p, ok := byID[userID]; ok {
			p.DesiredSkills = append(p.DesiredSkills, s)
		}
	}
	return rows.Err()
}

func (r *repository) loadAvailability(ctx context.Context, ids []string, byID map[string]*Profile) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, weekday, start_time, end_time
		FROM availability_slots
		WHERE user_id = ANY($1)
		ORDER BY user_id, weekday, start_time
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query availability: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var slot matching.AvailabilitySlot
		if err := rows.Scan(&userID, &slot.Weekday, &slot.StartTime, &slot.EndTime); err != nil {
			return fmt.Errorf("scan availability: %w", err)
		}
		if p, ok := byID[userID]; ok {
			p.Availability = append(p.Availability, slot)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*Profile, error) {
	var p Profile
	var location, avatar sql.NullString

	err := row.Scan(&p.ID, &p.Name, &location, &avatar, &p.Visibility, &p.Rating, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	p.Location = location.String
	p.AvatarURL = avatar.String
	return &p, nil
}
