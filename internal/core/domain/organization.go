package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Organization owns campaigns and the wallet shared by all of them.
type Organization struct {
	ID            uuid.UUID
	Name          string
	WalletBalance decimal.Decimal
}

// Business is the advertised listing. ReputationScore (0..100) is kept up
// to date by the reputation feed.
type Business struct {
	ID              uuid.UUID
	OrganizationID  uuid.UUID
	Name            string
	Verified        bool
	ReputationScore decimal.Decimal
}
