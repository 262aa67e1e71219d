package routes

import (
	"masalacafe/configs"
	"masalacafe/controllers"
	"masalacafe/middlewares"
	"masalacafe/pkg/clientstore"
	"masalacafe/repository"
	"masalacafe/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, store clientstore.Store) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	identities := repository.NewIdentityRepository(db)
	admins := repository.NewAdminRepository(db)
	profiles := repository.NewProfileRepository(db)
	menu := repository.NewMenuRepository(db)
	orders := repository.NewOrderRepository(db)

	// Services
	auth := services.NewAuthService(identities, cfg.JWTSecret, cfg.JWTTTL)
	reconciler := services.NewReconcileService(admins, profiles)
	sessions := services.NewSessionResolver(auth, reconciler)
	checkout := services.NewCheckoutService(orders)
	adminSvc := services.NewAdminService(orders, admins)

	// Controllers
	authCtrl := controllers.NewAuthController(auth, sessions, admins, profiles)
	menuCtrl := controllers.NewMenuController(menu)
	cartCtrl := controllers.NewCartController(store, menu)
	orderCtrl := controllers.NewOrderController(checkout, orders, profiles, store)
	adminCtrl := controllers.NewAdminController(adminSvc)
	profileCtrl := controllers.NewProfileController(profiles)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
		a.POST("/oauth/callback", authCtrl.OAuthCallback)
		a.GET("/confirm", authCtrl.Confirm)
		a.POST("/resend", authCtrl.ResendConfirmation)
		a.GET("/session", authCtrl.Session)
	}

	// Menu (public)
	r.GET("/categories", menuCtrl.ListCategories)
	r.GET("/menu", menuCtrl.ListItems)
	r.GET("/menu/popular", menuCtrl.ListPopular)
	r.GET("/menu/:id", menuCtrl.GetItem)

	// ต้อง login
	user := r.Group("", middlewares.AuthGuard(cfg.JWTSecret))
	{
		user.POST("/auth/signout", authCtrl.SignOut)

		user.GET("/cart", cartCtrl.Get)
		user.POST("/cart/items", cartCtrl.AddItem)
		user.PATCH("/cart/items/:id", cartCtrl.SetQuantity)
		user.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		user.DELETE("/cart", cartCtrl.Clear)

		user.GET("/checkout/prefill", orderCtrl.CheckoutPrefill)
		user.POST("/checkout", orderCtrl.PlaceOrder)
		user.GET("/orders", orderCtrl.ListMine)
		user.GET("/orders/:id", orderCtrl.GetMine)

		user.GET("/profile", profileCtrl.Get)
		user.PATCH("/profile", profileCtrl.Update)
	}

	// หลังบ้าน admin เท่านั้น
	admin := r.Group("/admin", middlewares.AuthGuard(cfg.JWTSecret), middlewares.AdminGuard())
	{
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
		admin.GET("/pending", adminCtrl.ListPendingAdmins)
		admin.PATCH("/pending/:id/approve", adminCtrl.ApproveAdmin)
	}
}
