package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
)

// paymentColumns — единый список колонок таблицы payments,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const paymentColumns = `
id, author_id, article_id, donor_id, nft_token_id, contract_address,
manager_address, amount, platform_fee, net_amount, currency, transaction_hash,
payment_status, payment_type, blockchain_network, token_uri, metadata,
created_at, confirmed_at, processed_at
`

// scanPayment сканирует одну строку платежа из результата запроса в доменную модель.
func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment

	if err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.ArticleID,
		&p.DonorID,
		&p.NFTTokenID,
		&p.ContractAddress,
		&p.ManagerAddress,
		&p.Amount,
		&p.PlatformFee,
		&p.NetAmount,
		&p.Currency,
		&p.TransactionHash,
		&p.Status,
		&p.Type,
		&p.Network,
		&p.TokenURI,
		&p.Metadata,
		&p.CreatedAt,
		&p.ConfirmedAt,
		&p.ProcessedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

// SavePayment создаёт платёж.
// Ошибки: storage.ErrAlreadyExists при конфликте transaction_hash.
func (s *Storage) SavePayment(ctx context.Context, p *models.Payment) error {
	const op = "storage/postgres/payments/SavePayment"

	q := `
	INSERT INTO payments (id, author_id, article_id, donor_id, nft_token_id,
		contract_address, manager_address, amount, platform_fee, net_amount,
		currency, transaction_hash, payment_status, payment_type,
		blockchain_network, token_uri, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := s.db.Exec(ctx, q,
		p.ID,
		p.AuthorID,
		p.ArticleID,
		p.DonorID,
		p.NFTTokenID,
		p.ContractAddress,
		p.ManagerAddress,
		p.Amount,
		p.PlatformFee,
		p.NetAmount,
		p.Currency,
		p.TransactionHash,
		p.Status,
		p.Type,
		p.Network,
		p.TokenURI,
		p.Metadata,
		p.CreatedAt,
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

// PaymentByID возвращает платёж по идентификатору.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) PaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	const op = "storage/postgres/payments/PaymentByID"

	q := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	result, err := scanPayment(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ConfirmPayment переводит платёж pending -> confirmed с фиксацией времени.
// Ошибки: storage.ErrNotFound при отсутствии записи,
// storage.ErrInvalidState, если платёж уже не pending.
func (s *Storage) ConfirmPayment(ctx context.Context, id uuid.UUID, at time.Time) (*models.Payment, error) {
	const op = "storage/postgres/payments/ConfirmPayment"

	q := `
	UPDATE payments
	SET payment_status = 'confirmed', confirmed_at = $2, processed_at = $2
	WHERE id = $1 AND payment_status = 'pending'
	RETURNING ` + paymentColumns

	result, err := scanPayment(s.db.QueryRow(ctx, q, id, at.UTC()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Различаем отсутствие записи и недопустимый статус.
			var exists bool
			if e := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payments WHERE id = $1)`, id).Scan(&exists); e != nil {
				return nil, fmt.Errorf("%s: %w", op, e)
			}
			if exists {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidState)
			}
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// AuthorStats возвращает сводку подтверждённых донатов автора:
// суммы, топ статей по сборам и последние платежи.
func (s *Storage) AuthorStats(ctx context.Context, authorID uuid.UUID) (*models.AuthorStats, error) {
	const op = "storage/postgres/payments/AuthorStats"

	stats := &models.AuthorStats{AuthorID: authorID}

	q := `
	SELECT COALESCE(sum(net_amount), 0), count(*)
	FROM payments
	WHERE author_id = $1 AND payment_status = 'confirmed'
	`
	if err := s.db.QueryRow(ctx, q, authorID).Scan(&stats.TotalReceived, &stats.TotalDonations); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if stats.TotalDonations > 0 {
		stats.AverageDonation = stats.TotalReceived / float64(stats.TotalDonations)
	}

	topQ := `
	SELECT p.article_id, a.title, count(*), sum(p.net_amount)
	FROM payments p
	JOIN articles a ON a.id = p.article_id
	WHERE p.author_id = $1 AND p.payment_status = 'confirmed'
	GROUP BY p.article_id, a.title
	ORDER BY sum(p.net_amount) DESC
	LIMIT 5
	`

	rows, err := s.db.Query(ctx, topQ, authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.TopArticleStat
		if err := rows.Scan(&t.ArticleID, &t.Title, &t.DonationCount, &t.TotalReceived); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		stats.TopArticles = append(stats.TopArticles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	recent, err := s.recentPayments(ctx, "author_id", authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stats.RecentDonations = recent

	return stats, nil
}

// DonorStats возвращает сводку донатов жертвователя.
func (s *Storage) DonorStats(ctx context.Context, donorID uuid.UUID) (*models.DonorStats, error) {
	const op = "storage/postgres/payments/DonorStats"

	stats := &models.DonorStats{DonorID: donorID}

	q := `
	SELECT COALESCE(sum(amount), 0), count(*)
	FROM payments
	WHERE donor_id = $1 AND payment_status = 'confirmed'
	`
	if err := s.db.QueryRow(ctx, q, donorID).Scan(&stats.TotalGiven, &stats.TotalDonations); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	recent, err := s.recentPayments(ctx, "donor_id", donorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	stats.RecentDonations = recent

	return stats, nil
}

// recentPayments возвращает последние подтверждённые платежи по колонке-фильтру.
// column — из фиксированного набора ("author_id"/"donor_id"), в SQL не попадает
// пользовательский ввод.
func (s *Storage) recentPayments(ctx context.Context, column string, id uuid.UUID) ([]models.Payment, error) {
	q := fmt.Sprintf(`SELECT %s FROM payments
		WHERE %s = $1 AND payment_status = 'confirmed'
		ORDER BY created_at DESC LIMIT 10`, paymentColumns, column)

	rows, err := s.db.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}

	return items, rows.Err()
}
