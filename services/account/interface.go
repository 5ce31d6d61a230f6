package account

import (
	"context"

	accountRepo "stagelink/database/repository/account"
	"stagelink/models"

	"github.com/go-redis/redis/v8"
)

// AccountService handles signup and signin for musicians and companies.
type AccountService interface {
	SignUp(ctx context.Context, email, password, name, role string) (*models.AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo      accountRepo.AccountRepository
	AuthCache *redis.Client
}
