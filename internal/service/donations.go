package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-platform/internal/config"
	"github.com/pribylovaa/go-news-platform/internal/models"
	"github.com/pribylovaa/go-news-platform/internal/storage"
	"github.com/pribylovaa/go-news-platform/pkg/log"
)

// ChainProcessor — абстракция blockchain-клиента для NFT-донатов.
// Боевой реализации в этом сервисе нет: платёж минтится мок-обработчиком,
// который выдаёт идентификаторы и подтверждает транзакцию с задержкой.
type ChainProcessor interface {
	// Mint выпускает NFT-квитанцию: возвращает token id, хеш транзакции и token URI.
	Mint(ctx context.Context, payment *models.Payment) (tokenID, txHash, tokenURI string, err error)
	// WaitConfirmation блокируется до подтверждения транзакции в сети.
	WaitConfirmation(ctx context.Context, txHash string) error
}

// mockChainProcessor — заглушка сети: генерирует случайные идентификаторы
// и «подтверждает» транзакцию по таймеру из конфига.
type mockChainProcessor struct {
	cfg config.DonationsConfig
}

func newMockChainProcessor(cfg config.DonationsConfig) *mockChainProcessor {
	return &mockChainProcessor{cfg: cfg}
}

func (m *mockChainProcessor) Mint(_ context.Context, _ *models.Payment) (string, string, string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", "", err
	}

	tokenID := new(big.Int).SetBytes(b[:8]).String()
	txHash := "0x" + hex.EncodeToString(b)
	tokenURI := "ipfs://donation/" + tokenID

	return tokenID, txHash, tokenURI, nil
}

func (m *mockChainProcessor) WaitConfirmation(ctx context.Context, _ string) error {
	select {
	case <-time.After(m.cfg.ConfirmDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CreateDonationParams — входные данные NFT-доната.
type CreateDonationParams struct {
	ArticleID uuid.UUID
	Amount    float64
	Anonymous bool
	Message   string
}

// CreateDonation создаёт NFT-донат автору опубликованной статьи.
//
// Правила:
//   - статья должна быть published и иметь автора с кошельком (did_address);
//   - донат самому себе запрещён;
//   - комиссия платформы считается в базисных пунктах от суммы;
//   - платёж создаётся в статусе pending, подтверждение — фоновой горутиной.
func (s *Service) CreateDonation(ctx context.Context, caller Identity, p CreateDonationParams) (*models.Payment, error) {
	const op = "service.donations.CreateDonation"

	if p.Amount <= 0 {
		return nil, fmt.Errorf("%s: non-positive amount: %w", op, ErrInvalidArgument)
	}

	article, err := s.storage.ArticleByID(ctx, p.ArticleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if article.Status != models.StatusPublished || article.AuthorID == nil {
		return nil, fmt.Errorf("%s: article is not donatable: %w", op, ErrInvalidArgument)
	}

	if *article.AuthorID == caller.UserID {
		return nil, fmt.Errorf("%s: self-donation: %w", op, ErrInvalidArgument)
	}

	author, err := s.storage.UserByID(ctx, *article.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if author.DIDAddress == "" {
		return nil, fmt.Errorf("%s: author has no wallet: %w", op, ErrInvalidArgument)
	}

	fee := p.Amount * float64(s.cfg.Donations.PlatformFeeBPS) / 10000

	payment := &models.Payment{
		ID:              uuid.New(),
		AuthorID:        *article.AuthorID,
		ArticleID:       p.ArticleID,
		Amount:          p.Amount,
		PlatformFee:     fee,
		NetAmount:       p.Amount - fee,
		Currency:        s.cfg.Donations.Currency,
		ContractAddress: s.cfg.Donations.TokenContract,
		ManagerAddress:  s.cfg.Donations.ManagerContract,
		Status:          models.PaymentPending,
		Type:            models.PaymentNFTDonation,
		Network:         s.cfg.Donations.Network,
		CreatedAt:       time.Now().UTC(),
	}

	if !p.Anonymous {
		donorID := caller.UserID
		payment.DonorID = &donorID
	}

	if p.Message != "" {
		payment.Metadata = map[string]any{"message": p.Message}
	}

	tokenID, txHash, tokenURI, err := s.chain.Mint(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("%s: mint: %w", op, err)
	}
	payment.NFTTokenID = tokenID
	payment.TransactionHash = txHash
	payment.TokenURI = tokenURI

	if err := s.storage.SavePayment(ctx, payment); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("donation_created",
		slog.String("payment_id", payment.ID.String()),
		slog.String("article_id", p.ArticleID.String()),
		slog.Float64("amount", p.Amount),
	)

	// Подтверждение в фоне; контекст запроса уже не годится.
	go s.confirmDonation(context.WithoutCancel(ctx), payment.ID, txHash)

	return payment, nil
}

// confirmDonation дожидается подтверждения транзакции и переводит платёж
// в статус confirmed. Ошибки только логируются: платёж останется pending
// и может быть подтверждён повторно внешним сверщиком.
func (s *Service) confirmDonation(ctx context.Context, paymentID uuid.UUID, txHash string) {
	const op = "service.donations.confirmDonation"

	lg := log.From(ctx)

	if err := s.chain.WaitConfirmation(ctx, txHash); err != nil {
		lg.Error("donation_confirmation_failed",
			slog.String("op", op),
			slog.String("payment_id", paymentID.String()),
			slog.String("err", err.Error()),
		)
		return
	}

	if _, err := s.storage.ConfirmPayment(ctx, paymentID, time.Now().UTC()); err != nil {
		lg.Error("donation_confirm_write_failed",
			slog.String("op", op),
			slog.String("payment_id", paymentID.String()),
			slog.String("err", err.Error()),
		)
		return
	}

	lg.Info("donation_confirmed", slog.String("payment_id", paymentID.String()))
}

// PaymentByID возвращает платёж. Доступен его сторонам и администратору.
func (s *Service) PaymentByID(ctx context.Context, caller Identity, id uuid.UUID) (*models.Payment, error) {
	const op = "service.donations.PaymentByID"

	payment, err := s.storage.PaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	isParty := payment.AuthorID == caller.UserID ||
		(payment.DonorID != nil && *payment.DonorID == caller.UserID)
	if !isParty && !caller.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return payment, nil
}

// AuthorDonationStats возвращает сводку донатов автора.
// Доступно самому автору и администратору.
func (s *Service) AuthorDonationStats(ctx context.Context, caller Identity, authorID uuid.UUID) (*models.AuthorStats, error) {
	const op = "service.donations.AuthorDonationStats"

	if caller.UserID != authorID && !caller.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	stats, err := s.storage.AuthorStats(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// DonorDonationStats возвращает сводку донатов вызывающего.
func (s *Service) DonorDonationStats(ctx context.Context, caller Identity) (*models.DonorStats, error) {
	const op = "service.donations.DonorDonationStats"

	stats, err := s.storage.DonorStats(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
