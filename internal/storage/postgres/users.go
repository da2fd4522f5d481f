package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
)

// userColumns — единый список колонок таблицы users,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const userColumns = `
id, username, email, password_hash, role, anonymous_mode, did_address,
avatar_url, profile_data, preferences, created_at, updated_at, last_active,
is_active, verification_status, reputation_score
`

// scanUser сканирует одну строку пользователя из результата запроса
// в доменную модель (jsonb-колонки pgx маппит в map[string]any напрямую).
func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User

	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.AnonymousMode,
		&u.DIDAddress,
		&u.AvatarURL,
		&u.ProfileData,
		&u.Preferences,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastActive,
		&u.IsActive,
		&u.Verified,
		&u.ReputationScore,
	); err != nil {
		return nil, err
	}

	return &u, nil
}

// SaveUser создает нового пользователя в БД.
// Ошибки: storage.ErrAlreadyExists при конфликте username/email.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage/postgres/users/SaveUser"

	q := `
	INSERT INTO users (id, username, email, password_hash, role, anonymous_mode,
		did_address, profile_data, preferences, created_at, updated_at, last_active,
		is_active, verification_status, reputation_score)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := s.db.Exec(ctx, q,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.AnonymousMode,
		user.DIDAddress,
		user.ProfileData,
		user.Preferences,
		user.CreatedAt,
		user.UpdatedAt,
		user.LastActive,
		user.IsActive,
		user.Verified,
		user.ReputationScore,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserByID возвращает пользователя по идентификатору.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage/postgres/users/UserByID"

	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	result, err := scanUser(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UserByUsername возвращает пользователя по имени.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage/postgres/users/UserByUsername"

	q := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	result, err := scanUser(s.db.QueryRow(ctx, q, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UpdateUser выполняет частичный апдейт: обновляет только поля,
// указанные непустыми pointer-полями, и всегда сдвигает updated_at = now().
// Ошибки: storage.ErrNotFound при отсутствии записи,
// storage.ErrAlreadyExists при конфликте username/email.
func (s *Storage) UpdateUser(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	const op = "storage/postgres/users/UpdateUser"

	sets := []string{"updated_at = now()"}
	args := make([]any, 0, 8)
	count := 1

	if upd.Username != nil {
		count++
		sets = append(sets, fmt.Sprintf("username = $%d", count))
		args = append(args, *upd.Username)
	}

	if upd.Email != nil {
		count++
		sets = append(sets, fmt.Sprintf("email = $%d", count))
		args = append(args, *upd.Email)
	}

	if upd.Role != nil {
		count++
		sets = append(sets, fmt.Sprintf("role = $%d", count))
		args = append(args, *upd.Role)
	}

	if upd.AnonymousMode != nil {
		count++
		sets = append(sets, fmt.Sprintf("anonymous_mode = $%d", count))
		args = append(args, *upd.AnonymousMode)
	}

	if upd.ProfileData != nil {
		count++
		sets = append(sets, fmt.Sprintf("profile_data = $%d", count))
		args = append(args, *upd.ProfileData)
	}

	if upd.Preferences != nil {
		count++
		sets = append(sets, fmt.Sprintf("preferences = $%d", count))
		args = append(args, *upd.Preferences)
	}

	if upd.AvatarURL != nil {
		count++
		sets = append(sets, fmt.Sprintf("avatar_url = $%d", count))
		args = append(args, *upd.AvatarURL)
	}

	count++
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), count, userColumns)

	result, err := scanUser(s.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DeactivateUser помечает пользователя как неактивного (мягкое удаление).
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/users/DeactivateUser"

	q := `UPDATE users SET is_active = FALSE, updated_at = now() WHERE id = $1`

	tag, err := s.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// TouchLastActive обновляет отметку последней активности.
// Отсутствие записи не считается ошибкой: вызов идёт в фоне после аутентификации.
func (s *Storage) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	const op = "storage/postgres/users/TouchLastActive"

	q := `UPDATE users SET last_active = $2 WHERE id = $1`

	if _, err := s.db.Exec(ctx, q, id, at.UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListUsers возвращает страницу пользователей и общее число под фильтром.
// Сортировка фиксирована: created_at DESC.
func (s *Storage) ListUsers(ctx context.Context, opts models.UserListOptions) ([]models.User, int64, error) {
	const op = "storage/postgres/users/ListUsers"

	where := []string{"TRUE"}
	args := make([]any, 0, 4)
	count := 0

	if opts.Search != "" {
		count++
		where = append(where, fmt.Sprintf("(username ILIKE $%d OR email ILIKE $%d)", count, count))
		args = append(args, "%"+opts.Search+"%")
	}

	if opts.Role != "" {
		count++
		where = append(where, fmt.Sprintf("role = $%d", count))
		args = append(args, opts.Role)
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	q := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		userColumns, cond, count+1, count+2)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return users, total, nil
}
