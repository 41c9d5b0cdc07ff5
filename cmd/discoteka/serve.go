package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/awisniew/discoteka/internal/api"
	"github.com/awisniew/discoteka/internal/auth"
	"github.com/awisniew/discoteka/internal/catalog"
	"github.com/awisniew/discoteka/internal/config"
	"github.com/awisniew/discoteka/internal/db"
	"github.com/awisniew/discoteka/internal/i18n"
	"github.com/awisniew/discoteka/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)

			userStore := store.NewUserStore(database)
			categoryStore := store.NewCategoryStore(database)
			tagStore := store.NewTagStore(database)
			albumStore := store.NewAlbumStore(database, tagStore)
			favoriteStore := store.NewFavoriteStore(database)
			commentStore := store.NewCommentStore(database)

			albums := catalog.NewAlbumService(albumStore, favoriteStore)
			categories := catalog.NewCategoryService(categoryStore, albumStore)
			comments := catalog.NewCommentService(commentStore, albumStore)

			authHandlers := auth.NewHandlers(sessionManager, userStore, cfg.AdminEmail)
			authMiddleware := auth.NewMiddleware(sessionManager, userStore)

			router := api.NewRouter(api.Deps{
				SessionManager: sessionManager,
				AuthHandlers:   authHandlers,
				AuthMiddleware: authMiddleware,
				Albums:         albums,
				Categories:     categories,
				Comments:       comments,
				TagStore:       tagStore,
				Translator:     i18n.New(cfg.Locale),
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
