package domain

import (
	"time"
)

var (
	MessageSuccessGetTransactions = "point transactions retrieved successfully"
	MessageSuccessGetTotalPoints  = "total points retrieved successfully"
	MessageFailedGetTransactions  = "failed to retrieve point transactions"
	MessageFailedGetTotalPoints   = "failed to retrieve total points"
	MessageFailedAddTransaction   = "failed to add point transaction"
)

type (
	TransactionResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		Points          int       `json:"points"`
		TransactionType string    `json:"transaction_type"`
		Description     string    `json:"description"`
		ReferenceID     *string   `json:"reference_id,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	TotalPointsResponse struct {
		UserID      string `json:"user_id"`
		TotalPoints int    `json:"total_points"`
	}
)
