// Package health serves and queries the health status of the program.
package health

import (
	"context"

	"github.com/qdm12/goservices/httpserver"
)

func NewServer(address string, logger Logger, healthcheck func(ctx context.Context) error) (
	server *httpserver.Server, err error) {
	name := "health"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(healthcheck),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
