package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"wavemate/internal/database"
	"wavemate/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// CoarseFilter is the subset of Layer 1 criteria cheap enough to push down
// to the store. The in-memory hard filter stays authoritative; this only
// shrinks the pool. Destination history is never pushed down: it is a
// nested, partly legacy structure matched in memory.
type CoarseFilter struct {
	OriginCountries []string
	BoardTypes      []string
	AgeMin          int
	AgeMax          int
	SkillMin        int
	SkillMax        int
}

type ProfileRepository interface {
	FetchRequester(ctx context.Context, id uuid.UUID) (profile.Profile, error)
	FetchPool(ctx context.Context, excludeID uuid.UUID, coarse CoarseFilter) ([]profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, COALESCE(name, ''), COALESCE(origin_country, ''), COALESCE(board_type, ''),
	COALESCE(skill_level, 0), COALESCE(age, 0), COALESCE(experience_tier, 0),
	COALESCE(group_type, ''), COALESCE(budget, 0), COALESCE(tags, '{}')`

func (r *PostgresProfileRepository) FetchRequester(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}

	visits, err := r.fetchVisits(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return profile.Profile{}, err
	}
	p.Visits = visits[p.ID]
	return p, nil
}

func (r *PostgresProfileRepository) FetchPool(ctx context.Context, excludeID uuid.UUID, coarse CoarseFilter) ([]profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id <> $1`
	args := []any{excludeID}

	appendArg := func(clause string, v any) {
		args = append(args, v)
		query += fmt.Sprintf(clause, len(args))
	}

	if len(coarse.OriginCountries) > 0 {
		appendArg(` AND LOWER(origin_country) = ANY($%d)`, lowered(coarse.OriginCountries))
	}
	if len(coarse.BoardTypes) > 0 {
		appendArg(` AND LOWER(board_type) = ANY($%d)`, lowered(coarse.BoardTypes))
	}
	if coarse.AgeMin > 0 {
		appendArg(` AND age >= $%d`, coarse.AgeMin)
	}
	if coarse.AgeMax > 0 {
		appendArg(` AND age <= $%d`, coarse.AgeMax)
	}
	if coarse.SkillMin > 0 {
		appendArg(` AND skill_level >= $%d`, coarse.SkillMin)
	}
	if coarse.SkillMax > 0 {
		appendArg(` AND skill_level <= $%d`, coarse.SkillMax)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	visitsByID, err := r.fetchVisits(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Visits = visitsByID[out[i].ID]
	}
	return out, nil
}

func (r *PostgresProfileRepository) fetchVisits(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]profile.Visit, error) {
	rows, err := r.db.Query(ctx,
		`SELECT profile_id, COALESCE(country, ''), COALESCE(areas, '{}'), COALESCE(towns, '{}'),
			COALESCE(days, 0), COALESCE(raw_text, '')
		 FROM profile_visits
		 WHERE profile_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]profile.Visit)
	for rows.Next() {
		var pid uuid.UUID
		var v profile.Visit
		if err := rows.Scan(&pid, &v.Country, &v.Areas, &v.Towns, &v.Days, &v.RawText); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], normalizeVisit(v))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeVisit folds the two historical destination shapes into one.
// Structured rows pass through; legacy rows carry only free text, from
// which the leading segment is taken as a best-effort country so the
// in-memory matchers see a single canonical struct.
func normalizeVisit(v profile.Visit) profile.Visit {
	if strings.TrimSpace(v.Country) != "" {
		return v
	}
	raw := strings.TrimSpace(v.RawText)
	if raw == "" {
		return v
	}
	cut := len(raw)
	for _, sep := range []string{",", " - ", "(", ":"} {
		if idx := strings.Index(raw, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	v.Country = strings.TrimSpace(raw[:cut])
	return v
}

type profileRow interface {
	Scan(dest ...any) error
}

func scanProfile(row profileRow) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.OriginCountry, &p.BoardType,
		&p.SkillLevel, &p.Age, &p.ExperienceTier,
		&p.GroupType, &p.Budget, &p.Tags,
	)
	if err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func lowered(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
