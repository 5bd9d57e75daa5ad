package cmd

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/carshare-cli/internal/adapters/httpapi"
	"github.com/bnema/carshare-cli/internal/adapters/render/view"
	"github.com/bnema/carshare-cli/internal/adapters/session/memory"
	sessiontoml "github.com/bnema/carshare-cli/internal/adapters/session/toml"
	"github.com/bnema/carshare-cli/internal/application"
	"github.com/bnema/carshare-cli/internal/config"
	"github.com/bnema/carshare-cli/internal/logging"
	"github.com/bnema/carshare-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	auth         *application.AuthService
	profile      *application.ProfileService
	registration *application.RegistrationService
	reservations *application.ReservationService
	vehicles     *application.VehicleService
	billing      *application.BillingService
	render       func(view.Page) (string, error)
}

func wireApp(logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logging.New(logOutput, cfg.LogLevel)

	session, err := newSessionStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	clientConfig := func(baseURL string) httpapi.Config {
		return httpapi.Config{
			BaseURL:    baseURL,
			HTTPClient: http.DefaultClient,
			Logger:     log,
		}
	}

	users := httpapi.NewUserClient(clientConfig(cfg.UsersBaseURL))
	vehicles := httpapi.NewVehicleClient(clientConfig(cfg.VehiclesBaseURL))
	reservations := httpapi.NewReservationClient(clientConfig(cfg.ReservationsBaseURL))
	billing := httpapi.NewBillingClient(clientConfig(cfg.BillingBaseURL))

	return &app{
		auth:         application.NewAuthService(users, session, log),
		profile:      application.NewProfileService(users, session, log),
		registration: application.NewRegistrationService(users, log),
		reservations: application.NewReservationService(reservations, session, log),
		vehicles:     application.NewVehicleService(vehicles, reservations, session, log),
		billing:      application.NewBillingService(billing, log),
		render:       view.Render,
	}, nil
}

func newSessionStore(cfg config.Config) (ports.SessionStore, error) {
	if cfg.SessionBackend == config.SessionBackendMemory {
		return memory.NewStore(), nil
	}

	store, err := sessiontoml.NewStore(cfg.SessionPath, ports.SystemClock{})
	if err != nil {
		return nil, err
	}

	return store, nil
}
