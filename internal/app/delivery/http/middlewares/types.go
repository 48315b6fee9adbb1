package middlewares

import "go.uber.org/zap"

type Middlewares struct {
	Log *zap.Logger
}

func NewMiddlewares(log *zap.Logger) *Middlewares {
	return &Middlewares{Log: log}
}
