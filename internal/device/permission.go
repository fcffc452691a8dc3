package device

import (
	"context"
	"sync"
)

type PermissionStatus int

const (
	Undetermined PermissionStatus = iota
	Granted
	Denied
)

func (s PermissionStatus) String() string {
	switch s {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "undetermined"
	}
}

func ParsePermissionStatus(s string) PermissionStatus {
	switch s {
	case "granted":
		return Granted
	case "denied":
		return Denied
	default:
		return Undetermined
	}
}

type PermissionInterface interface {
	Check(ctx context.Context) (PermissionStatus, error)
	Request(ctx context.Context) (PermissionStatus, error)
}

// ConfigPermission answers from configuration. A request resolves to Granted
// when grantOnRequest is set and to Denied otherwise; the answer sticks.
type ConfigPermission struct {
	mu             sync.Mutex
	status         PermissionStatus
	grantOnRequest bool
}

func NewConfigPermission(status PermissionStatus, grantOnRequest bool) *ConfigPermission {
	return &ConfigPermission{status: status, grantOnRequest: grantOnRequest}
}

func (p *ConfigPermission) Check(_ context.Context) (PermissionStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, nil
}

func (p *ConfigPermission) Request(ctx context.Context) (PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return Undetermined, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != Granted {
		if p.grantOnRequest {
			p.status = Granted
		} else {
			p.status = Denied
		}
	}
	return p.status, nil
}
