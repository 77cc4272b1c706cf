package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "profiles" }

type seedVisit struct {
	Country string
	Areas   []string
	Towns   []string
	Days    int
	RawText string
}

type seedProfile struct {
	ID             string
	Name           string
	OriginCountry  string
	BoardType      string
	SkillLevel     int
	Age            int
	ExperienceTier int
	GroupType      string
	Budget         int
	Tags           []string
	Visits         []seedVisit
}

func (ProfilesSeeder) Run(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []seedProfile{
		{
			ID: "2f9c1a34-5b7d-4e21-9a08-1c6f3d8e4b01", Name: "Maya", OriginCountry: "Israel",
			BoardType: "shortboard", SkillLevel: 4, Age: 29, ExperienceTier: 3,
			GroupType: "solo", Budget: 2, Tags: []string{"sunrise sessions", "van life"},
			Visits: []seedVisit{
				{Country: "Portugal", Areas: []string{"west", "southwest"}, Towns: []string{"Ericeira", "Sagres"}, Days: 45},
				{Country: "Indonesia", Areas: []string{"south"}, Towns: []string{"Uluwatu"}, Days: 30},
			},
		},
		{
			ID: "7a4e2b90-3c1f-4d56-8e72-9b0a5c4d3e02", Name: "Tom", OriginCountry: "Australia",
			BoardType: "longboard", SkillLevel: 3, Age: 34, ExperienceTier: 2,
			GroupType: "couple", Budget: 3, Tags: []string{"longboard style", "photography"},
			Visits: []seedVisit{
				{Country: "Sri Lanka", Areas: []string{"south", "southwest"}, Towns: []string{"Weligama"}, Days: 60},
				{RawText: "Costa Rica - mostly the pacific side, 3 weeks around Santa Teresa", Days: 21},
			},
		},
		{
			ID: "c81d5f27-6e39-4a84-b150-2d7e8f9a6c03", Name: "Lena", OriginCountry: "Germany",
			BoardType: "shortboard", SkillLevel: 2, Age: 25, ExperienceTier: 1,
			GroupType: "solo", Budget: 1, Tags: []string{"yoga", "hostel life"},
			Visits: []seedVisit{
				{Country: "Morocco", Areas: []string{"southwest"}, Towns: []string{"Taghazout"}, Days: 14},
			},
		},
		{
			ID: "5b3a8c16-9d42-4f70-a6e1-8c2b4d0e7f04", Name: "Diego", OriginCountry: "Spain",
			BoardType: "fish", SkillLevel: 5, Age: 31, ExperienceTier: 3,
			GroupType: "group", Budget: 2, Tags: []string{"barrel hunting", "dawn patrol"},
			Visits: []seedVisit{
				{Country: "Indonesia", Areas: []string{"south", "east"}, Towns: []string{"Uluwatu", "Gerupuk"}, Days: 90},
				{Country: "Portugal", Areas: []string{"north"}, Days: 20},
			},
		},
	}

	for _, it := range items {
		pid, err := uuid.Parse(it.ID)
		if err != nil {
			return fmt.Errorf("seed profile %s: %w", it.Name, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO profiles (id, name, origin_country, board_type, skill_level, age, experience_tier, group_type, budget, tags)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (id) DO NOTHING`,
			pid, it.Name, it.OriginCountry, it.BoardType, it.SkillLevel, it.Age,
			it.ExperienceTier, it.GroupType, it.Budget, it.Tags,
		)
		if err != nil {
			return err
		}
		for _, v := range it.Visits {
			_, err = tx.Exec(ctx,
				`INSERT INTO profile_visits (profile_id, country, areas, towns, days, raw_text)
				 SELECT $1, $2, $3, $4, $5, $6
				 WHERE NOT EXISTS (
					SELECT 1 FROM profile_visits
					WHERE profile_id = $1 AND COALESCE(country, '') = COALESCE($2, '') AND COALESCE(raw_text, '') = COALESCE($6, '')
				 )`,
				pid, v.Country, v.Areas, v.Towns, v.Days, v.RawText,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
