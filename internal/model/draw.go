package model

import (
	"time"

	"github.com/google/uuid"
)

// Draw is a validated set of winning numbers and its bonus number.
type Draw struct {
	ID             uuid.UUID `json:"id" db:"id"`
	WinningNumbers []int     `json:"winningNumbers" db:"winning_numbers"`
	BonusNumber    int       `json:"bonusNumber" db:"bonus_number"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// DrawRequest represents the request payload for recording a draw.
// Both fields carry raw user input and are validated before use.
type DrawRequest struct {
	WinningNumbers string `json:"winningNumbers"`
	BonusNumber    string `json:"bonusNumber"`
}

// ValidationRequest carries a single raw input to validate.
type ValidationRequest struct {
	Input string `json:"input"`
}

// BonusValidationRequest carries a raw bonus input and the winning numbers it
// must not collide with.
type BonusValidationRequest struct {
	Input          string `json:"input"`
	WinningNumbers []int  `json:"winningNumbers"`
}

// ValidationResponse is returned when an input is accepted.
type ValidationResponse struct {
	Valid       bool  `json:"valid"`
	Amount      *int  `json:"amount,omitempty"`
	Numbers     []int `json:"numbers,omitempty"`
	BonusNumber *int  `json:"bonusNumber,omitempty"`
}
