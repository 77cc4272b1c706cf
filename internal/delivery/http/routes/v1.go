package routes

import (
	"wavemate/internal/config"
	v1 "wavemate/internal/delivery/http/routes/v1"
	"wavemate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, matchUC usecase.MatchUsecase) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, matchUC)
}
