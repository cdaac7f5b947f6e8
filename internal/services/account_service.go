package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clean/internal/models/db_models"
	"clean/internal/models/request_models"
	"clean/internal/models/response_models"
	"clean/internal/repositories"
	"clean/internal/skinprofile"
	mem "clean/pkg/memcache"
	"clean/pkg/utils"
)

const refreshTokenBytes = 32

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error)
	CreateAdmin(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (response_models.TokenPairResponse, error)
	GetProfile(ctx context.Context, accountID string) (response_models.AccountResponse, error)
	UpdateSkinProfile(ctx context.Context, accountID string, request request_models.UpdateSkinProfileRequest) (response_models.SkinProfileResponse, error)
}

type AccountService struct {
	accountRepo   repositories.AccountRepository
	issuer        *utils.TokenIssuer
	refreshTokens mem.RefreshTokenStore
	refreshTTL    time.Duration
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	issuer *utils.TokenIssuer,
	refreshTokens mem.RefreshTokenStore,
	refreshTTL time.Duration,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:   accountRepo,
		issuer:        issuer,
		refreshTokens: refreshTokens,
		refreshTTL:    refreshTTL,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error) {
	return a.createAccount(ctx, request, db_models.RoleUser)
}

func (a *AccountService) CreateAdmin(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error) {
	return a.createAccount(ctx, request, db_models.RoleAdmin)
}

func (a *AccountService) createAccount(ctx context.Context, request request_models.SignUpRequest, role string) (response_models.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.AccountResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return response_models.AccountResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AccountResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	newAccount := &db_models.Account{
		Username:     strings.TrimSpace(request.Username),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		SkinType:     skinprofile.Normal.String(),
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.AccountResponse{}, utils.ErrEmailAlreadyExists
		}
		return response_models.AccountResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	zap.L().Info("account created", zap.String("account_id", newAccount.ID.String()), zap.String("role", role))
	return toAccountResponse(newAccount), nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.TokenPairResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		return response_models.TokenPairResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return response_models.TokenPairResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.TokenPairResponse{}, utils.ErrInvalidCredentials
	}

	pair, err := a.issuePair(account)
	if err != nil {
		return response_models.TokenPairResponse{}, err
	}

	zap.L().Debug("login", zap.String("account_id", account.ID.String()), zap.Duration("took", time.Since(startTime)))
	return pair, nil
}

func (a *AccountService) Refresh(ctx context.Context, refreshToken string) (response_models.TokenPairResponse, error) {
	accountID := a.refreshTokens.Consume(refreshToken)
	if accountID == "" {
		return response_models.TokenPairResponse{}, utils.ErrInvalidRefreshToken
	}

	account, err := a.findAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, utils.ErrAccountNotFound) {
			return response_models.TokenPairResponse{}, utils.ErrInvalidRefreshToken
		}
		return response_models.TokenPairResponse{}, err
	}

	return a.issuePair(account)
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (response_models.AccountResponse, error) {
	account, err := a.findAccount(ctx, accountID)
	if err != nil {
		return response_models.AccountResponse{}, err
	}
	return toAccountResponse(account), nil
}

func (a *AccountService) UpdateSkinProfile(ctx context.Context, accountID string, request request_models.UpdateSkinProfileRequest) (response_models.SkinProfileResponse, error) {
	if !skinprofile.IsValidLabel(request.SkinType) {
		return response_models.SkinProfileResponse{}, fmt.Errorf("%w: %q", utils.ErrInvalidSkinType, request.SkinType)
	}
	problems := make([]string, 0, len(request.SkinProblems))
	for _, p := range request.SkinProblems {
		if !skinprofile.IsProblemName(p) {
			return response_models.SkinProfileResponse{}, fmt.Errorf("%w: unknown skin problem %q", utils.ErrInvalidInput, p)
		}
		problems = append(problems, p)
	}

	id, err := uuid.Parse(accountID)
	if err != nil {
		return response_models.SkinProfileResponse{}, utils.ErrAccountNotFound
	}
	if err := persistSkinProfile(ctx, a.accountRepo, id, request.SkinType, problems); err != nil {
		return response_models.SkinProfileResponse{}, err
	}

	return response_models.SkinProfileResponse{SkinType: request.SkinType, SkinProblems: problems}, nil
}

func (a *AccountService) findAccount(ctx context.Context, accountID string) (*db_models.Account, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) issuePair(account *db_models.Account) (response_models.TokenPairResponse, error) {
	access, err := a.issuer.CreateToken(account.ID, account.Role)
	if err != nil {
		return response_models.TokenPairResponse{}, fmt.Errorf("signing access token: %w", err)
	}
	refresh, err := utils.GenerateSecureToken(refreshTokenBytes)
	if err != nil {
		return response_models.TokenPairResponse{}, fmt.Errorf("generating refresh token: %w", err)
	}
	a.refreshTokens.Set(refresh, account.ID.String(), a.refreshTTL)

	return response_models.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func persistSkinProfile(ctx context.Context, repo repositories.AccountRepository, id uuid.UUID, skinType string, problems []string) error {
	rows, err := repo.UpdateSkinProfile(ctx, id, skinType, problems)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rows == 0 {
		return utils.ErrAccountNotFound
	}
	return nil
}
