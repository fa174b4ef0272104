package routes

import (
	"github.com/anantkataria/Anant-Restaurant-API/configs"
	"github.com/anantkataria/Anant-Restaurant-API/controllers"
	"github.com/anantkataria/Anant-Restaurant-API/entity"
	"github.com/anantkataria/Anant-Restaurant-API/middlewares"
	"github.com/anantkataria/Anant-Restaurant-API/repository"
	"github.com/anantkataria/Anant-Restaurant-API/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	roleSvc := services.NewRoleService(userRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	groupSvc := services.NewGroupService(userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	groupCtrl := controllers.NewGroupController(groupSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret, roleSvc)
	managerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, roleSvc, "manager")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Catalog: reads for any authenticated user, writes for staff
	r.GET("/category-list", authed, menuCtrl.ListCategories)
	r.POST("/category-list", managerOnly, menuCtrl.CreateCategory)
	r.GET("/menu-items", authed, menuCtrl.ListItems)
	r.GET("/menu-items/:id", authed, menuCtrl.GetItem)

	staffMenu := r.Group("", managerOnly)
	{
		staffMenu.POST("/menu-items", menuCtrl.CreateItem)
		staffMenu.PUT("/menu-items/:id", menuCtrl.UpdateItem)
		staffMenu.PATCH("/menu-items/:id", menuCtrl.UpdateItem)
		staffMenu.DELETE("/menu-items/:id", menuCtrl.DeleteItem)
	}

	// Role group management (manager/admin)
	groups := r.Group("/groups", managerOnly)
	{
		groups.GET("/manager/users", groupCtrl.List(entity.GroupManager))
		groups.POST("/manager/users", groupCtrl.Add(entity.GroupManager))
		groups.DELETE("/manager/users/:id", groupCtrl.Remove(entity.GroupManager))

		groups.GET("/delivery-crew/users", groupCtrl.List(entity.GroupDeliveryCrew))
		groups.POST("/delivery-crew/users", groupCtrl.Add(entity.GroupDeliveryCrew))
		groups.DELETE("/delivery-crew/users/:id", groupCtrl.Remove(entity.GroupDeliveryCrew))
	}

	// Cart
	cart := r.Group("/cart", authed)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	// Orders: role checks beyond authentication live in the service,
	// since the caller's relationship to the order matters.
	orders := r.Group("/orders", authed)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Place)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id", orderCtrl.Update)
		orders.PATCH("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
	}
}
