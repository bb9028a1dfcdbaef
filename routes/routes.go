package routes

import (
	"shop-backend/controllers"
	"shop-backend/middleware"
	"shop-backend/services"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Tokens   *services.TokenService
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Product  *controllers.ProductController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Order    *controllers.OrderController
}

// Register wires all routes under /api. Product listing and auth endpoints
// are public; cart, checkout and profile require a valid token; the admin
// group additionally requires the admin role claim.
func Register(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/admin/login", d.Auth.AdminLogin)
	api.POST("/auth/forgot_password", d.Auth.ForgotPassword)
	api.POST("/auth/reset_password", d.Auth.ResetPassword)

	api.GET("/user/products", d.Product.GetProducts)
	api.GET("/user/products/:id", d.Product.GetOneProduct)

	authed := api.Group("")
	authed.Use(middleware.VerifyToken(d.Tokens))
	{
		authed.GET("/user/profile", d.User.Profile)
		authed.PUT("/user/profile", d.User.UpdateProfile)

		authed.GET("/user/get/cart", d.Cart.GetCart)
		authed.POST("/user/add/cart", d.Cart.AddToCart)
		authed.PATCH("/user/update/cart", d.Cart.UpdateCart)
		authed.DELETE("/user/remove/cart/:productId", d.Cart.RemoveFromCart)

		authed.POST("/checkout", d.Checkout.Checkout)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.VerifyToken(d.Tokens), middleware.AdminOnly())
	{
		admin.GET("/products", d.Product.GetProducts)
		admin.GET("/products/:id", d.Product.GetOneProduct)
		admin.POST("/products", d.Product.AddProduct)
		admin.PUT("/products/:id", d.Product.UpdateProduct)
		admin.DELETE("/products/:id", d.Product.DeleteProduct)

		admin.GET("/orders", d.Order.GetOrders)
		admin.PUT("/orders/:id", d.Order.UpdateOrder)
	}
}
