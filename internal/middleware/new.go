package middleware

import (
	"coder-chat/config"
	"coder-chat/pkg/log"
)

type Middleware struct {
	l             log.Logger
	sessionConfig config.SessionConfig
	locks         *sessionLocks
}

func New(l log.Logger, sessionConfig config.SessionConfig) Middleware {
	if sessionConfig.CookieName == "" {
		sessionConfig.CookieName = DefaultCookieName
	}
	return Middleware{
		l:             l,
		sessionConfig: sessionConfig,
		locks:         newSessionLocks(),
	}
}
