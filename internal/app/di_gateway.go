package app

import (
	"fmt"

	authHTTP "github.com/allisson/vehiclebff/internal/auth/http"
	gatewayHTTP "github.com/allisson/vehiclebff/internal/gateway/http"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
	"github.com/allisson/vehiclebff/internal/http"
)

// GatewayUseCase returns the relay use case with its fallback policy.
func (c *Container) GatewayUseCase() (gatewayUseCase.GatewayUseCase, error) {
	var err error
	c.gatewayUseCaseInit.Do(func() {
		c.gatewayUseCase, err = c.initGatewayUseCase()
		if err != nil {
			c.setInitError("gatewayUseCase", err)
		}
	})
	if storedErr := c.initError("gatewayUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.gatewayUseCase, nil
}

// initGatewayUseCase creates the gateway use case decorated with business metrics.
func (c *Container) initGatewayUseCase() (gatewayUseCase.GatewayUseCase, error) {
	relay, err := c.Relay()
	if err != nil {
		return nil, fmt.Errorf("failed to get relay for gateway use case: %w", err)
	}

	fixtures, err := c.FallbackStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get fallback store for gateway use case: %w", err)
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for gateway use case: %w", err)
	}

	useCase := gatewayUseCase.NewGatewayUseCase(relay, fixtures, c.config.FallbackDataEnabled, c.Logger())
	return gatewayUseCase.NewGatewayUseCaseWithMetrics(useCase, bm), nil
}

// routeHandlers builds every handler mounted by the API server.
func (c *Container) routeHandlers() (http.Handlers, error) {
	logger := c.Logger()

	gateway, err := c.GatewayUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get gateway use case for http server: %w", err)
	}

	images, err := c.ImageFetcher()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get image fetcher for http server: %w", err)
	}

	login, err := c.LoginUseCase()
	if err != nil {
		return http.Handlers{}, fmt.Errorf("failed to get login use case for http server: %w", err)
	}

	return http.Handlers{
		Login:           authHTTP.NewLoginHandler(login, logger),
		Appointments:    gatewayHTTP.NewAppointmentHandler(gateway, logger),
		Attribution:     gatewayHTTP.NewAttributionHandler(gateway, logger),
		Content:         gatewayHTTP.NewContentHandler(gateway, logger),
		CustomerJourney: gatewayHTTP.NewCustomerJourneyHandler(gateway, logger),
		Messaging:       gatewayHTTP.NewMessagingHandler(gateway, logger),
		Valuation:       gatewayHTTP.NewValuationHandler(gateway, logger),
		Vehicles:        gatewayHTTP.NewVehiclesHandler(gateway, images, logger),
	}, nil
}
