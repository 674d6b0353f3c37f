package di

import (
	"context"

	"gorm.io/gorm"

	"minisocial/internal/admin"
	"minisocial/internal/chat"
	"minisocial/internal/config"
	"minisocial/internal/dbmongo"
	"minisocial/internal/feed"
	"minisocial/internal/session"
	"minisocial/internal/user"
)

// Application is the fully wired API server dependency graph.
type Application struct {
	Config       *config.Config
	DB           *gorm.DB
	Sessions     *session.Manager
	UserHandler  *user.Handler
	FeedHandlers *feed.FeedHandlers
	ChatHandler  *chat.ChatHandler
	AdminHandler *admin.AdminHandler
}

func ProvideSessionManager(cfg *config.Config) *session.Manager {
	return session.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func ProvideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = mc.Close(context.Background())
	}
	return mc, cleanup, nil
}

func ProvideBlobStorage(mc *dbmongo.MongoClient, cfg *config.Config) *dbmongo.BlobStorage {
	return dbmongo.NewBlobStorage(mc, cfg.Media.BaseURL, cfg.Media.UploadTimeout)
}
