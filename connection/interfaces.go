package connection

import (
	"context"
)

// Protocol driver interfaces and types
type ProtocolDriver interface {
	ProtocolType() Protocol
	Close() error
	Execute(ctx context.Context, req *ProtocolRequest) (*ProtocolResponse, error)
}

type ProtocolFactory interface {
	Create(config ConnectionConfig) (ProtocolDriver, error)
	HealthCheck(driver ProtocolDriver) bool
}

type ProtocolRequest struct {
	CommandType CommandType // commands/interactive_event
	Payload     interface{} // []string or []*channel.SendInteractiveEvent
}

type ProtocolResponse struct {
	Success    bool
	RawData    []byte
	Structured interface{} // *response.Response or *response.MultiResponse
}
