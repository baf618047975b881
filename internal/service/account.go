package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"golang.org/x/crypto/bcrypt"
)

type AccountRepo interface {
	CreateAccount(ctx context.Context, reg entities.Registration, passwordHash string) (entities.Account, error)
	AccountByEmail(ctx context.Context, email string) (entities.Account, string, error)
	AccountByID(ctx context.Context, id int64) (entities.Account, error)
}

type accountService struct {
	logger *slog.Logger
	repo   AccountRepo
	cost   int
}

func NewAccountService(logger *slog.Logger, repo AccountRepo) *accountService {
	return &accountService{
		logger: logger.With(slog.String("service", "account")),
		repo:   repo,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *accountService) Register(ctx context.Context, reg entities.Registration) (entities.Account, error) {
	if !reg.Role.Valid() {
		return entities.Account{}, fmt.Errorf("unknown role %q", reg.Role)
	}
	reg.Email = normalizeEmail(reg.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.repo.CreateAccount(ctx, reg, string(hash))
	if err != nil {
		return entities.Account{}, err
	}

	s.logger.Info("account registered", slog.Int64("account_id", account.ID), slog.String("role", string(account.Role)))
	return account, nil
}

// Authenticate does not tell an unknown email apart from a wrong password.
func (s *accountService) Authenticate(ctx context.Context, email, password string) (entities.Account, error) {
	account, hash, err := s.repo.AccountByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, entities.ErrAccountNotFound) {
		return entities.Account{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.Account{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logger.Debug("password mismatch", slog.Int64("account_id", account.ID))
		return entities.Account{}, entities.ErrInvalidCredentials
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
