package session

import "time"

type Config struct {
	TokenTTL time.Duration
	IdleTTL  time.Duration
}
