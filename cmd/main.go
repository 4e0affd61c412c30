package main

import (
	"context"

	"github.com/ChristianMoraLopez/nutriplanbackend/config"
	"github.com/ChristianMoraLopez/nutriplanbackend/logger"
	"github.com/ChristianMoraLopez/nutriplanbackend/routes"
	"github.com/ChristianMoraLopez/nutriplanbackend/services"
	"github.com/ChristianMoraLopez/nutriplanbackend/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	if cfg.JWT.Secret == "" {
		logger.L().Fatal("JWT_SECRET is required")
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.L().Fatal("database startup failed", zap.Error(err))
	}

	var uploader *utils.S3Uploader
	if cfg.S3Bucket != "" {
		uploader, err = utils.NewS3Uploader(context.Background(), cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			logger.L().Fatal("object storage startup failed", zap.Error(err))
		}
	} else {
		logger.L().Info("S3_BUCKET not set, photo upload disabled")
	}

	var verifier services.TokenVerifier
	if cfg.GoogleClientID != "" {
		verifier, err = services.NewGoogleVerifier(cfg.GoogleClientID)
		if err != nil {
			logger.L().Fatal("google verifier startup failed", zap.Error(err))
		}
	} else {
		logger.L().Info("GOOGLE_CLIENT_ID not set, google login disabled")
	}

	r := routes.SetupRouter(db, cfg, uploader, verifier)

	logger.L().Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
