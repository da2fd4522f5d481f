package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus — статус платежа.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// PaymentType — тип платежа.
type PaymentType string

const (
	PaymentNFTDonation     PaymentType = "nft_donation"
	PaymentRegularDonation PaymentType = "regular_donation"
)

// Payment — донат автору статьи (с NFT-токеном в качестве «квитанции»).
//
// Особенности:
//   - Amount/PlatformFee/NetAmount — в валюте Currency;
//   - DonorID == nil для анонимных донатов;
//   - Metadata хранится как JSON (jsonb в PostgreSQL).
type Payment struct {
	ID              uuid.UUID      `json:"id"`
	AuthorID        uuid.UUID      `json:"author_id"`
	ArticleID       uuid.UUID      `json:"article_id"`
	DonorID         *uuid.UUID     `json:"donor_id,omitempty"`
	NFTTokenID      string         `json:"nft_token_id"`
	ContractAddress string         `json:"contract_address"`
	ManagerAddress  string         `json:"donation_manager_address,omitempty"`
	Amount          float64        `json:"amount"`
	PlatformFee     float64        `json:"platform_fee"`
	NetAmount       float64        `json:"net_amount"`
	Currency        string         `json:"currency"`
	TransactionHash string         `json:"transaction_hash"`
	Status          PaymentStatus  `json:"payment_status"`
	Type            PaymentType    `json:"payment_type"`
	Network         string         `json:"blockchain_network"`
	TokenURI        string         `json:"token_uri,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	ConfirmedAt     *time.Time     `json:"confirmed_at,omitempty"`
	ProcessedAt     *time.Time     `json:"processed_at,omitempty"`
}

// TopArticleStat — агрегат донатов по одной статье автора.
type TopArticleStat struct {
	ArticleID     uuid.UUID `json:"article_id"`
	Title         string    `json:"title"`
	DonationCount int64     `json:"donation_count"`
	TotalReceived float64   `json:"total_received"`
}

// AuthorStats — сводка донатов автора (только подтверждённые платежи).
type AuthorStats struct {
	AuthorID        uuid.UUID        `json:"author_id"`
	TotalReceived   float64          `json:"total_received"`
	TotalDonations  int64            `json:"total_donations"`
	AverageDonation float64          `json:"average_donation"`
	TopArticles     []TopArticleStat `json:"top_articles"`
	RecentDonations []Payment        `json:"recent_donations"`
}

// DonorStats — сводка донатов жертвователя.
type DonorStats struct {
	DonorID         uuid.UUID `json:"donor_id"`
	TotalGiven      float64   `json:"total_given"`
	TotalDonations  int64     `json:"total_donations"`
	RecentDonations []Payment `json:"recent_donations"`
}
