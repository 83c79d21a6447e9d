package snap

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/rizkypra/storefront/internal/config"
)

// Module exposes the Snap client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(Config{
		ServerKey:  p.Config.SnapServerKey,
		Production: p.Config.SnapProduction,
		Sanitize:   p.Config.SnapSanitize,
		Enable3DS:  p.Config.Snap3DS,
	}, p.Logger)
}
