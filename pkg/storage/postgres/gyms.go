package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"verifier/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const gymsTable = "gym"

// PgGym mirrors a row of the gym registry table.
type PgGym struct {
	ID          int             `db:"id"`
	GymName     sql.NullString  `db:"gym_name"`
	FullAddress sql.NullString  `db:"full_address"`
	RoadAddress sql.NullString  `db:"road_address"`
	PhoneNumber sql.NullString  `db:"phone_number"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
}

// ToDomain converts the row into a domain.Gym.
func (g PgGym) ToDomain() domain.Gym {
	gym := domain.Gym{
		ID:          domain.GymID(g.ID),
		Name:        g.GymName.String,
		FullAddress: g.FullAddress.String,
		RoadAddress: g.RoadAddress.String,
		Phone:       g.PhoneNumber.String,
	}
	if g.Latitude.Valid {
		lat := g.Latitude.Float64
		gym.Latitude = &lat
	}
	if g.Longitude.Valid {
		lng := g.Longitude.Float64
		gym.Longitude = &lng
	}

	return gym
}

// SearchGyms returns gyms whose name contains name or whose full address
// contains address, case-insensitively. The result is ordered by id so that
// downstream tie-breaking is deterministic regardless of planner choices.
// Empty search terms never match: a blank extracted field must not turn the
// prefilter into a full table scan of candidates.
func (p *PgSQL) SearchGyms(ctx context.Context, name, address string) ([]domain.Gym, error) {
	var conds []goqu.Expression
	if name != "" {
		conds = append(conds, goqu.I("gym_name").ILike("%"+name+"%"))
	}
	if address != "" {
		conds = append(conds, goqu.I("full_address").ILike("%"+address+"%"))
	}
	if len(conds) == 0 {
		return nil, nil
	}

	var rows []PgGym
	if err := p.Builder.From(gymsTable).
		Where(goqu.Or(conds...)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search gyms in pg: %w", err)
	}

	gyms := make([]domain.Gym, 0, len(rows))
	for _, row := range rows {
		gyms = append(gyms, row.ToDomain())
	}

	return gyms, nil
}

// GymByID returns a single gym by registry id, or nil when no row exists.
func (p *PgSQL) GymByID(ctx context.Context, id domain.GymID) (*domain.Gym, error) {
	var row PgGym
	found, err := p.Builder.From(gymsTable).
		Where(goqu.I("id").Eq(int(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch gym by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	gym := row.ToDomain()

	return &gym, nil
}
