package globals

import (
	"context"

	"folio/config"
)

var JwtSecret = []byte(config.Load().JWTSecret)

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
