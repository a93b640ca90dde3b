package app

import (
	"fmt"
	"time"

	authService "github.com/allisson/vehiclebff/internal/auth/service"
	authUseCase "github.com/allisson/vehiclebff/internal/auth/usecase"
)

// JWTService returns the gateway token issuer and validator.
func (c *Container) JWTService() (authService.TokenService, error) {
	var err error
	c.jwtServiceInit.Do(func() {
		c.jwtService, err = authService.NewJWTService(authService.JWTConfig{
			SecretKey:  []byte(c.config.JWTSecretKey),
			Issuer:     c.config.JWTIssuer,
			Audience:   c.config.JWTAudience,
			Expiration: c.config.JWTExpiration,
		}, time.Now)
		if err != nil {
			c.setInitError("jwtService", fmt.Errorf("failed to create jwt service: %w", err))
		}
	})
	if storedErr := c.initError("jwtService"); storedErr != nil {
		return nil, storedErr
	}
	return c.jwtService, nil
}

// PasswordService returns the argon2id password hasher.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// LoginUseCase returns the login use case decorated with business metrics.
func (c *Container) LoginUseCase() (authUseCase.LoginUseCase, error) {
	var err error
	c.loginUseCaseInit.Do(func() {
		c.loginUseCase, err = c.initLoginUseCase()
		if err != nil {
			c.setInitError("loginUseCase", err)
		}
	})
	if storedErr := c.initError("loginUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.loginUseCase, nil
}

func (c *Container) initLoginUseCase() (authUseCase.LoginUseCase, error) {
	tokens, err := c.JWTService()
	if err != nil {
		return nil, fmt.Errorf("failed to get jwt service for login use case: %w", err)
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for login use case: %w", err)
	}

	useCase := authUseCase.NewLoginUseCase(tokens, c.PasswordService(), authUseCase.LoginConfig{
		Username:     c.config.LoginUsername,
		PasswordHash: c.config.LoginPasswordHash,
	}, c.Logger())

	return authUseCase.NewLoginUseCaseWithMetrics(useCase, bm), nil
}
