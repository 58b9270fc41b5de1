package repository

import (
	"context"

	"loan-amortizer/domain"
)

type LoanRepository interface {
	Save(ctx context.Context, result domain.LoanResult) error
	FindByID(ctx context.Context, id string) (domain.LoanResult, error)
}
