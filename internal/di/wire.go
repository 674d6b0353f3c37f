//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"minisocial/internal/admin"
	"minisocial/internal/chat"
	"minisocial/internal/common"
	"minisocial/internal/config"
	"minisocial/internal/dbmongo"
	"minisocial/internal/dbmysql"
	"minisocial/internal/feed"
	"minisocial/internal/media"
	"minisocial/internal/user"
)

// InitializeApplication wires the whole API server graph.
func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		dbmysql.NewMySQL,
		ProvideMongo,
		ProvideBlobStorage,
		ProvideSessionManager,
		wire.Bind(new(common.BlobStore), new(*dbmongo.BlobStorage)),

		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,

		feed.NewFeedRepository,
		wire.Bind(new(feed.Posts), new(*feed.FeedRepository)),
		wire.Bind(new(feed.Likes), new(*feed.FeedRepository)),
		wire.Bind(new(feed.Comments), new(*feed.FeedRepository)),
		feed.NewFeedService,
		wire.Bind(new(feed.FeedUsecase), new(*feed.FeedService)),
		feed.NewFeedHandlers,

		chat.NewMessageRepository,
		chat.NewChatService,
		chat.NewChatHandler,

		admin.NewAdminService,
		admin.NewAdminHandler,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil, nil
}

// InitializeMediaServer wires the standalone image-serving binary.
func InitializeMediaServer(cfg *config.Config) (*media.HTTPServer, func(), error) {
	wire.Build(
		ProvideMongo,
		ProvideBlobStorage,
		media.NewHTTPServer,
	)
	return nil, nil, nil
}
