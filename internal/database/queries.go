package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}

	return nil
}

// =============================================================================
// Saved Location Queries
// =============================================================================

// GetLocation returns the location saved by owner.
// Returns ErrNotFound if the owner has not saved one.
func (db *DB) GetLocation(ctx context.Context, owner string) (*Location, error) {
	query := `
		SELECT id, owner, label, latitude, longitude, created_at, updated_at
		FROM saved_locations
		WHERE owner = ?
	`

	var loc Location
	var createdAt, updatedAt sql.NullString

	err := db.QueryRowContext(ctx, query, owner).Scan(
		&loc.ID, &loc.Owner, &loc.Label, &loc.Latitude, &loc.Longitude,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query location for %s: %w", owner, err)
	}

	loc.CreatedAt = parseTimestamp(createdAt)
	loc.UpdatedAt = parseTimestamp(updatedAt)

	return &loc, nil
}

// upsertLocationSQL replaces the owner's row, keeping its id and created_at.
const upsertLocationSQL = `
	INSERT INTO saved_locations (owner, label, latitude, longitude)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(owner) DO UPDATE SET
		label = excluded.label,
		latitude = excluded.latitude,
		longitude = excluded.longitude,
		updated_at = datetime('now')
`

// SaveLocation creates or replaces the location for loc.Owner and fills
// loc with the stored row.
func (db *DB) SaveLocation(ctx context.Context, loc *Location) error {
	if loc.Owner == "" {
		return errors.New("save location: empty owner")
	}

	if _, err := db.ExecContext(ctx, upsertLocationSQL,
		loc.Owner, loc.Label, loc.Latitude, loc.Longitude,
	); err != nil {
		return fmt.Errorf("save location for %s: %w", loc.Owner, err)
	}

	stored, err := db.GetLocation(ctx, loc.Owner)
	if err != nil {
		return fmt.Errorf("reload saved location: %w", err)
	}
	*loc = *stored

	return nil
}

// SaveLocation creates or replaces the location for loc.Owner within the
// transaction. Unlike DB.SaveLocation it does not reload the row.
func (tx *Tx) SaveLocation(ctx context.Context, loc *Location) error {
	if loc.Owner == "" {
		return errors.New("save location: empty owner")
	}

	if _, err := tx.ExecContext(ctx, upsertLocationSQL,
		loc.Owner, loc.Label, loc.Latitude, loc.Longitude,
	); err != nil {
		return fmt.Errorf("save location for %s: %w", loc.Owner, err)
	}

	return nil
}

// DeleteLocation removes the location saved by owner.
// Returns ErrNotFound if there was nothing to delete.
func (db *DB) DeleteLocation(ctx context.Context, owner string) error {
	result, err := db.ExecContext(ctx, "DELETE FROM saved_locations WHERE owner = ?", owner)
	if err != nil {
		return fmt.Errorf("delete location for %s: %w", owner, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CountLocations returns how many owners have saved a location.
func (db *DB) CountLocations(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM saved_locations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return n, nil
}
