package bad

import "context"

// MySQLConnection is a low-level detail with its own reasons to exist.
type MySQLConnection struct {
	DSN string
}

func (c *MySQLConnection) Connect(ctx context.Context) error {
	// dial the server behind the DSN
	return nil
}

// AppInit is high-level policy,
// yet it names the concrete driver and even its DSN.
// Testing startup now requires a MySQL server.
type AppInit struct {
	db MySQLConnection
}

func NewAppInit() *AppInit {
	return &AppInit{db: MySQLConnection{DSN: "root@tcp(localhost:3306)/app"}}
}

func (a *AppInit) Start(ctx context.Context) error {
	return a.db.Connect(ctx)
}
