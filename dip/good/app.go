package good

import (
	"context"
	"errors"
)

// ErrNoConnection is returned when AppInit is constructed without a connection.
var ErrNoConnection = errors.New("a Connection implementation is required")

// Connection is owned by the high-level module.
// Drivers depend on this vocabulary, not the other way around.
type Connection interface {
	Connect(ctx context.Context) error
	Close() error
}

// AppInit depends on the abstraction it owns.
// Which database shows up behind it is somebody else's decision.
type AppInit struct {
	conn Connection
}

func NewAppInit(conn Connection) (*AppInit, error) {
	if conn == nil {
		return nil, ErrNoConnection
	}
	return &AppInit{conn: conn}, nil
}

func (a *AppInit) Start(ctx context.Context) error {
	return a.conn.Connect(ctx)
}

func (a *AppInit) Stop() error {
	return a.conn.Close()
}
