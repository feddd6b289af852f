package connection

import (
	"fmt"
	"time"

	"github.com/charlesren/ylog"
	"github.com/scrapli/scrapligo/driver/options"
	"github.com/scrapli/scrapligo/platform"
)

type ScrapliFactory struct{}

func NewScrapliFactory() *ScrapliFactory {
	return &ScrapliFactory{}
}

func (f *ScrapliFactory) Create(config ConnectionConfig) (ProtocolDriver, error) {
	platformOS, ok := ScrapliPlatform(config.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlavour, config.Type)
	}
	if config.Host == "" {
		return nil, fmt.Errorf("host cannot be empty")
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	ylog.Debugf("scrapli", "creating driver for %s on %s (platform %s)",
		config.Type, config.Host, platformOS)

	p, err := platform.NewPlatform(
		platformOS,
		config.Host,
		options.WithAuthNoStrictKey(),
		options.WithAuthUsername(config.Username),
		options.WithAuthPassword(config.Password),
		options.WithTimeoutOps(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create platform failed: %w", err)
	}

	driver, err := p.GetNetworkDriver()
	if err != nil {
		return nil, fmt.Errorf("get network driver failed: %w", err)
	}

	if err := driver.Open(); err != nil {
		return nil, fmt.Errorf("open connection failed: %w", err)
	}

	return &ScrapliDriver{
		host:       config.Host,
		deviceType: config.Type,
		driver:     driver,
		channel:    driver.Channel,
		timeout:    timeout,
	}, nil
}

func (f *ScrapliFactory) HealthCheck(driver ProtocolDriver) bool {
	scrapliDriver, ok := driver.(*ScrapliDriver)
	if !ok {
		return false
	}
	scrapliDriver.mu.Lock()
	defer scrapliDriver.mu.Unlock()
	if scrapliDriver.driver == nil {
		return false
	}
	_, err := scrapliDriver.driver.GetPrompt()
	return err == nil
}
