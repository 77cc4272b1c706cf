package v1

import (
	"wavemate/internal/config"
	"wavemate/internal/delivery/http/handler"
	"wavemate/internal/delivery/http/middleware"
	"wavemate/internal/pkg/jwt"
	"wavemate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, matchUC usecase.MatchUsecase) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACVerifier(cfg.JWT.AccessSecret)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	matchHandler := handler.NewMatchHandler(matchUC)

	protected := r.Group("", authMw.Middleware())
	matchHandler.RegisterRoutes(protected)
}
