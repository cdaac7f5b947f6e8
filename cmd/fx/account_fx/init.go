package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clean/internal/config"
	"clean/internal/repositories"
	"clean/internal/services"
	mem "clean/pkg/memcache"
	"clean/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	issuer *utils.TokenIssuer,
	refreshTokens mem.RefreshTokenStore,
	cfg config.Config,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, issuer, refreshTokens, cfg.RefreshTokenTTL)
}
