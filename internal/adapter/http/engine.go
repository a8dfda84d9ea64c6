package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskapi/internal/adapter/http/middleware"
	"taskapi/internal/adapter/http/validation"
)

// NewEngine builds the gin engine with the shared middleware stack.
func NewEngine(logger *zap.Logger, trustedProxies []string) (*gin.Engine, error) {
	if err := validation.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.GinZapMiddleware(logger),
	)
	return r, nil
}
