package health

import (
	"context"

	"github.com/routerlogin/routerlogin/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Loader,Logger

type Loader interface {
	Routers(ctx context.Context) (routers []models.Router, err error)
	Articles(ctx context.Context) (articles []models.Article, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
