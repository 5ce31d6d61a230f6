package account

import (
	"context"
	"fmt"
	"strings"

	"stagelink/models"
	"stagelink/utils"

	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultAccountService) SignUp(ctx context.Context, email, password, name, role string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("email, password and name are required")
	}
	if role != models.RoleMusician && role != models.RoleCompany {
		return nil, fmt.Errorf("role must be %q or %q", models.RoleMusician, models.RoleCompany)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := models.Account{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := s.Repo.Create(ctx, &acct); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, acct)
}

func (s *DefaultAccountService) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acct, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return s.issueToken(ctx, *acct)
}

func (s *DefaultAccountService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultAccountService) issueToken(ctx context.Context, acct models.Account) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(acct.ID, acct.Email, acct.Role, utils.AuthCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if s.AuthCache != nil {
		key := utils.AuthCachePrefix + utils.HashToken(token)
		if err := s.AuthCache.Set(ctx, key, acct.ID, utils.AuthCacheTTL).Err(); err != nil {
			return nil, fmt.Errorf("failed to cache session: %w", err)
		}
	}

	return &models.AuthResponse{Account: acct, Token: token}, nil
}
