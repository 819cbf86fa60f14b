package database

// DefaultMinConnections is how many idle connections the pool keeps warm so
// the first requests after a quiet period do not pay connection setup.
const DefaultMinConnections = 2

// Error messages for pool construction
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Connected to the database"
)
