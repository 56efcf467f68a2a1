package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jleandrodev/nextpage-sub000/internals/configs"
	"github.com/jleandrodev/nextpage-sub000/internals/constants"

	ebookRoute "github.com/jleandrodev/nextpage-sub000/internals/features/catalog/ebooks/route"
	lojistaRoute "github.com/jleandrodev/nextpage-sub000/internals/features/lojistas/lojista/route"
	historyRoute "github.com/jleandrodev/nextpage-sub000/internals/features/points/history/route"
	importRoute "github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/route"
	resgateRoute "github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/route"
	authRoute "github.com/jleandrodev/nextpage-sub000/internals/features/users/auth/route"
	userRoute "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/route"

	"github.com/jleandrodev/nextpage-sub000/internals/middlewares/auth"
)

// SetupRoutes monta os grupos da API:
//
//	/api/public — login, refresh (sem auth)
//	/api/c      — cliente autenticado (catálogo, resgates, extrato, perfil)
//	/api/a      — admin do lojista (importações, clientes, ebooks)
//	/api/o      — owner da plataforma (gestão de lojistas)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ---------- Público ----------
	public := api.Group("/public")
	authRoute.AuthPublicRoutes(public, db)

	// ---------- Cliente ----------
	cliente := api.Group("/c",
		auth.AuthJWT(auth.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
		auth.IsCliente(),
	)
	authRoute.AuthUserRoutes(cliente, db)
	userRoute.UserSelfRoutes(cliente, db)
	ebookRoute.EbookUserRoutes(cliente, db)
	resgateRoute.ResgateUserRoutes(cliente, db)
	historyRoute.HistoryUserRoutes(cliente, db)

	// ---------- Admin do lojista ----------
	admin := api.Group("/a",
		auth.AuthJWT(auth.AuthJWTOpts{Secret: configs.JWTSecret}),
		auth.IsAdmin(),
	)
	importRoute.ImportAdminRoutes(admin, db)
	historyRoute.HistoryAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	ebookRoute.EbookAdminRoutes(admin, db)

	// ---------- Owner ----------
	owner := api.Group("/o",
		auth.AuthJWT(auth.AuthJWTOpts{Secret: configs.JWTSecret}),
		auth.RequireRoles(constants.RoleAdmin),
	)
	lojistaRoute.LojistaOwnerRoutes(owner, db)

	BaseRoutes(app, db)
}
