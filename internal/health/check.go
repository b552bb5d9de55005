package health

import (
	"context"
	"fmt"
)

// MakeIsHealthy returns a health check function verifying both
// collections can be loaded.
func MakeIsHealthy(loader Loader, logger Logger) func(ctx context.Context) error {
	return func(ctx context.Context) (err error) {
		err = isHealthy(ctx, loader)
		if err != nil {
			logger.Warn("unhealthy: " + err.Error())
		}
		return err
	}
}

func isHealthy(ctx context.Context, loader Loader) (err error) {
	_, err = loader.Routers(ctx)
	if err != nil {
		return fmt.Errorf("loading routers: %w", err)
	}

	_, err = loader.Articles(ctx)
	if err != nil {
		return fmt.Errorf("loading articles: %w", err)
	}

	return nil
}
