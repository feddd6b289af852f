package connection

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charlesren/ylog"
	"github.com/scrapli/scrapligo/channel"
	"github.com/scrapli/scrapligo/driver/network"
	"github.com/scrapli/scrapligo/response"

	"github.com/charlesren/cli_device_gateway/devicetype"
)

type ScrapliDriver struct {
	host       string
	deviceType devicetype.DeviceType
	mu         sync.Mutex
	driver     *network.Driver
	channel    *channel.Channel
	timeout    time.Duration
}

func (d *ScrapliDriver) ProtocolType() Protocol {
	return ProtocolScrapli
}

func (d *ScrapliDriver) DeviceType() devicetype.DeviceType {
	return d.deviceType
}

func (d *ScrapliDriver) Execute(ctx context.Context, req *ProtocolRequest) (*ProtocolResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.driver == nil || d.channel == nil {
		ylog.Errorf("ScrapliDriver", "driver for %s not initialized", d.deviceType)
		return nil, fmt.Errorf("driver not properly initialized")
	}

	effectiveCtx := ctx
	if effectiveCtx == nil {
		var cancel context.CancelFunc
		effectiveCtx, cancel = context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
	}
	if err := effectiveCtx.Err(); err != nil {
		ylog.Warnf("ScrapliDriver", "context cancelled: %v", err)
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	switch req.CommandType {
	case CommandTypeCommands:
		cmds, ok := req.Payload.([]string)
		if !ok {
			return nil, ErrUnsupportedInputType
		}

		resultChan := make(chan struct {
			resp *response.MultiResponse
			err  error
		}, 1)

		ylog.Debugf("ScrapliDriver", "%s executing %d commands", d.deviceType, len(cmds))

		go func() {
			resp, err := d.driver.SendCommands(cmds)
			resultChan <- struct {
				resp *response.MultiResponse
				err  error
			}{resp, err}
		}()

		select {
		case <-effectiveCtx.Done():
			ylog.Warnf("ScrapliDriver", "command execution timed out or cancelled: %v", effectiveCtx.Err())
			return nil, effectiveCtx.Err()
		case result := <-resultChan:
			if result.err != nil {
				ylog.Errorf("ScrapliDriver", "command execution failed: %v", result.err)
				return nil, result.err
			}
			var rawData strings.Builder
			for i, r := range result.resp.Responses {
				rawData.WriteString(r.Result)
				if i < len(result.resp.Responses)-1 {
					rawData.WriteString("\n")
				}
			}
			return &ProtocolResponse{
				Success:    true,
				RawData:    []byte(rawData.String()),
				Structured: result.resp,
			}, nil
		}

	case CommandTypeInteractiveEvent:
		events, ok := req.Payload.([]*channel.SendInteractiveEvent)
		if !ok {
			return nil, ErrUnsupportedInputType
		}

		resultChan := make(chan struct {
			resp []byte
			err  error
		}, 1)

		ylog.Debugf("ScrapliDriver", "%s executing %d interactive events", d.deviceType, len(events))

		go func() {
			resp, err := d.channel.SendInteractive(events)
			resultChan <- struct {
				resp []byte
				err  error
			}{resp, err}
		}()

		select {
		case <-effectiveCtx.Done():
			ylog.Warnf("ScrapliDriver", "interactive execution timed out or cancelled: %v", effectiveCtx.Err())
			return nil, effectiveCtx.Err()
		case result := <-resultChan:
			if result.err != nil {
				ylog.Errorf("ScrapliDriver", "interactive execution failed: %v", result.err)
				return nil, result.err
			}
			return &ProtocolResponse{
				Success: true,
				RawData: result.resp,
			}, nil
		}

	default:
		return nil, ErrUnsupportedCommandType
	}
}

func (d *ScrapliDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.driver == nil {
		return nil
	}
	err := d.driver.Close()
	d.driver = nil
	d.channel = nil
	return err
}
