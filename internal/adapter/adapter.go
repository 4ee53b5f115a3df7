package adapter

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/smarthub-adapter/internal/collector"
	"github.com/wheelibin/smarthub-adapter/internal/config"
	"github.com/wheelibin/smarthub-adapter/internal/hub"
	"github.com/wheelibin/smarthub-adapter/internal/models"
	"golang.org/x/oauth2"
)

type authenticator interface {
	Login(ctx context.Context, username string, password string) (*oauth2.Token, error)
}

type statusProber interface {
	Status(ctx context.Context, token *oauth2.Token) error
}

type deviceCollector interface {
	Collect(ctx context.Context, token *oauth2.Token) *models.CollectResult
}

// Adapter implements the host platform's entry points for one adapter instance.
type Adapter struct {
	logger          *log.Logger
	instance        config.Instance
	authenticator   authenticator
	statusProber    statusProber
	deviceCollector deviceCollector
}

func New(
	logger *log.Logger,
	instance config.Instance,
	authenticator authenticator,
	statusProber statusProber,
	deviceCollector deviceCollector,
) *Adapter {
	return &Adapter{
		logger:          logger,
		instance:        instance,
		authenticator:   authenticator,
		statusProber:    statusProber,
		deviceCollector: deviceCollector,
	}
}

// NewForInstance wires the adapter to the hub described by instance.
func NewForInstance(logger *log.Logger, settings config.Settings, instance config.Instance) *Adapter {
	client := hub.NewClient(logger, instance.BaseURL(), settings.RequestTimeout)
	return New(
		logger,
		instance,
		hub.NewAuthenticator(logger, client, settings.ClientID, settings.ClientSecret),
		client,
		collector.NewDeviceCollector(logger, client, settings.SystemGrouping),
	)
}

// Test checks the instance configuration and that the hub accepts the credentials.
func (a *Adapter) Test(ctx context.Context) (result *models.TestResult) {
	defer timed(a.logger, "Test")()

	result = &models.TestResult{}
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Unexpected connection test error", "panic", r, "stack", string(debug.Stack()))
			result.WithError(fmt.Sprintf("Unexpected connection test error: %v", r))
		}
	}()

	if a.instance.ID == "" {
		result.WithError("No ID Found")
		return result
	}
	if strings.EqualFold(a.instance.ID, "bad") {
		result.WithError("The ID is bad")
		return result
	}

	a.logger.Info("Testing connection", "url", a.instance.BaseURL())

	token, err := a.authenticator.Login(ctx, a.instance.Username, a.instance.Password)
	if err != nil {
		result.WithError(authenticationFailure(err))
		return result
	}

	if err := a.statusProber.Status(ctx, token); err != nil {
		a.logger.Error("Hub status probe failed", "err", err)
		result.WithError(fmt.Sprintf("Hub status probe failed: %s", err))
		return result
	}

	a.logger.Info("Connection test passed", "url", a.instance.BaseURL())
	return result
}

// Collect logs in and gathers the hub's devices. A failed login yields a result with
// no objects and the authentication error.
func (a *Adapter) Collect(ctx context.Context) (result *models.CollectResult) {
	defer timed(a.logger, "Collection")()

	result = models.NewCollectResult()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Unexpected collection error", "panic", r, "stack", string(debug.Stack()))
			result.WithError(fmt.Sprintf("Unexpected collection error: %v", r))
		}
	}()

	a.logger.Info("Collecting", "url", a.instance.BaseURL(), "container_memory_limit", a.instance.ContainerMemoryLimit)

	token, err := a.authenticator.Login(ctx, a.instance.Username, a.instance.Password)
	if err != nil {
		result.WithError(authenticationFailure(err))
		return result
	}

	collected := a.deviceCollector.Collect(ctx, token)
	if collected == nil {
		result.WithError("Unexpected collection error: no result from device collector")
		return result
	}

	return collected
}

// Endpoints lists the urls whose certificates the host should verify. The hub is
// only reached over plain http so there are none.
func (a *Adapter) Endpoints() *models.EndpointResult {
	defer timed(a.logger, "Get Endpoints")()
	return models.NewEndpointResult()
}

func authenticationFailure(err error) string {
	if !errors.Is(err, hub.ErrAuthenticationFailed) {
		err = fmt.Errorf("%w: %w", hub.ErrAuthenticationFailed, err)
	}
	return err.Error()
}

func timed(logger *log.Logger, name string) func() {
	start := time.Now()
	return func() {
		logger.Info("Timer", "name", name, "duration", time.Since(start))
	}
}
