package app

import (
	"fmt"

	"github.com/allisson/vehiclebff/internal/fallback"
	"github.com/allisson/vehiclebff/internal/httputil"
	"github.com/allisson/vehiclebff/internal/upstream"
)

// Relay returns the authenticated upstream relay.
func (c *Container) Relay() (upstream.Relay, error) {
	var err error
	c.relayInit.Do(func() {
		c.relay, err = c.initRelay()
		if err != nil {
			c.setInitError("relay", err)
		}
	})
	if storedErr := c.initError("relay"); storedErr != nil {
		return nil, storedErr
	}
	return c.relay, nil
}

// ImageFetcher returns the vehicle image fetcher.
func (c *Container) ImageFetcher() (upstream.ImageFetcher, error) {
	var err error
	c.imageFetcherInit.Do(func() {
		c.imageFetcher, err = c.initImageFetcher()
		if err != nil {
			c.setInitError("imageFetcher", err)
		}
	})
	if storedErr := c.initError("imageFetcher"); storedErr != nil {
		return nil, storedErr
	}
	return c.imageFetcher, nil
}

// FallbackStore returns the embedded fixture store.
func (c *Container) FallbackStore() (fallback.Store, error) {
	var err error
	c.fallbackStoreInit.Do(func() {
		c.fallbackStore, err = fallback.NewStore()
		if err != nil {
			c.setInitError("fallbackStore", fmt.Errorf("failed to load fallback fixtures: %w", err))
		}
	})
	if storedErr := c.initError("fallbackStore"); storedErr != nil {
		return nil, storedErr
	}
	return c.fallbackStore, nil
}

// initRelay creates the relay sharing the process-wide token provider.
func (c *Container) initRelay() (upstream.Relay, error) {
	tokens, err := c.TokenProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get token provider for relay: %w", err)
	}

	mp, err := c.meterProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get meter provider for relay: %w", err)
	}

	return upstream.NewRelay(
		c.config.UpstreamBaseURL,
		httputil.NewOutboundClient(c.config.UpstreamTimeout, mp, "upstream"),
		tokens,
		c.config.UpstreamUserAgent,
		c.Logger(),
	), nil
}

// initImageFetcher creates the image fetcher on its own pooled client.
func (c *Container) initImageFetcher() (upstream.ImageFetcher, error) {
	mp, err := c.meterProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get meter provider for image fetcher: %w", err)
	}

	var opts []httputil.ClientOption
	if !c.config.ImageAllowPrivateNetworks {
		opts = append(opts, httputil.WithDialControl(upstream.RejectNonPublicAddress))
	}

	return upstream.NewImageFetcher(
		httputil.NewOutboundClient(c.config.UpstreamTimeout, mp, "images", opts...),
		c.config.ImageAllowedHostList(),
		c.Logger(),
	), nil
}
