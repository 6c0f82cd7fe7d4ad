package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/backstage/internal/models"
	"github.com/desertthunder/backstage/internal/shared"
)

// ArtistRepository persists authoritative artist records in SQLite.
//
// Rows hold a partial field set: NULL columns mean the store has no
// authoritative value and the baseline supplies that field instead.
type ArtistRepository struct {
	db *sql.DB
}

// NewArtistRepository creates a new [ArtistRepository] with the given database connection
func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Create inserts an authoritative row for the given profile.
//
// Only the fields the store is authoritative for are written; aggregates
// (plays, followers, balance) never live in this table.
func (r *ArtistRepository) Create(profile *models.ArtistProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if profile.Email == "" {
		return fmt.Errorf("%w: contact email is the natural key", shared.ErrInvalidInput)
	}

	sequence, err := NextSequence(r.db, "artists")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	if profile.ID == "" {
		profile.ID = shared.GenerateID()
	}

	genres, err := encodeGenres(profile.Genres)
	if err != nil {
		return err
	}
	socials, err := encodeSocials(profile.Socials)
	if err != nil {
		return err
	}

	now := time.Now()

	query := `
		INSERT INTO artists (id, sequence, email, name, bio, avatar, location, genres, socials, verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		profile.ID,
		sequence,
		strings.ToLower(profile.Email),
		nullString(profile.Name),
		nullString(profile.Bio),
		nullString(profile.Avatar),
		nullString(profile.Location),
		genres,
		socials,
		profile.Verified,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert artist: %w", err)
	}

	return nil
}

// FindByEmail looks up the authoritative row by contact email.
//
// Returns (nil, nil) when no row exists; only transport failures surface as
// errors. Present columns come back as a [models.ProfilePatch] so callers
// can merge them over a baseline.
func (r *ArtistRepository) FindByEmail(ctx context.Context, email string) (*models.ProfilePatch, error) {
	query := `
		SELECT name, bio, avatar, location, genres, socials, verified
		FROM artists
		WHERE email = ?
	`

	var (
		name     sql.NullString
		bio      sql.NullString
		avatar   sql.NullString
		location sql.NullString
		genres   sql.NullString
		socials  sql.NullString
		verified sql.NullBool
	)

	err := r.db.QueryRowContext(ctx, query, strings.ToLower(email)).
		Scan(&name, &bio, &avatar, &location, &genres, &socials, &verified)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}

	patch := &models.ProfilePatch{}
	if name.Valid {
		patch.Name = &name.String
	}
	if bio.Valid {
		patch.Bio = &bio.String
	}
	if avatar.Valid {
		patch.Avatar = &avatar.String
	}
	if location.Valid {
		patch.Location = &location.String
	}
	if genres.Valid {
		decoded, err := decodeGenres(genres.String)
		if err != nil {
			return nil, err
		}
		patch.Genres = decoded
	}
	if socials.Valid {
		decoded, err := decodeSocials(socials.String)
		if err != nil {
			return nil, err
		}
		patch.Socials = decoded
	}
	if verified.Valid {
		patch.Verified = &verified.Bool
	}

	return patch, nil
}

// SaveFields propagates the provided patch fields to the authoritative row.
//
// Only fields present in the patch are written. Returns an error when no row
// exists for the email; callers treat the whole call as best-effort.
func (r *ArtistRepository) SaveFields(ctx context.Context, email string, patch models.ProfilePatch) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Bio != nil {
		sets = append(sets, "bio = ?")
		args = append(args, *patch.Bio)
	}
	if patch.Avatar != nil {
		sets = append(sets, "avatar = ?")
		args = append(args, *patch.Avatar)
	}
	if patch.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *patch.Location)
	}
	if patch.Genres != nil {
		genres, err := encodeGenres(patch.Genres)
		if err != nil {
			return err
		}
		sets = append(sets, "genres = ?")
		args = append(args, genres)
	}
	if patch.Socials != nil {
		socials, err := encodeSocials(patch.Socials)
		if err != nil {
			return err
		}
		sets = append(sets, "socials = ?")
		args = append(args, socials)
	}
	if patch.Verified != nil {
		sets = append(sets, "verified = ?")
		args = append(args, *patch.Verified)
	}

	query := fmt.Sprintf("UPDATE artists SET %s WHERE email = ?", strings.Join(sets, ", "))
	args = append(args, strings.ToLower(email))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("no artist row for email: %s", email)
	}

	return nil
}

// Count returns the number of authoritative rows. Used by setup seeding.
func (r *ArtistRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM artists").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count artists: %w", err)
	}
	return count, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func encodeGenres(genres []string) (any, error) {
	if genres == nil {
		return nil, nil
	}
	data, err := json.Marshal(genres)
	if err != nil {
		return nil, fmt.Errorf("failed to encode genres: %w", err)
	}
	return string(data), nil
}

func decodeGenres(raw string) ([]string, error) {
	var genres []string
	if err := json.Unmarshal([]byte(raw), &genres); err != nil {
		return nil, fmt.Errorf("failed to decode genres: %w", err)
	}
	return genres, nil
}

func encodeSocials(socials models.SocialLinks) (any, error) {
	if socials == nil {
		return nil, nil
	}
	data, err := json.Marshal(socials)
	if err != nil {
		return nil, fmt.Errorf("failed to encode socials: %w", err)
	}
	return string(data), nil
}

func decodeSocials(raw string) (models.SocialLinks, error) {
	var socials models.SocialLinks
	if err := json.Unmarshal([]byte(raw), &socials); err != nil {
		return nil, fmt.Errorf("failed to decode socials: %w", err)
	}
	return socials, nil
}
