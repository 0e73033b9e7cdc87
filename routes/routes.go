package routes

import (
	"net/http"

	"cradle/addresses"
	"cradle/auth"
	"cradle/cart"
	"cradle/catalog"
	"cradle/checkout"
	"cradle/contactfm"
	"cradle/home"
	"cradle/middleware"
	"cradle/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
	router.ServeFiles("/static/offerpic/*filepath", http.Dir("static/offerpic"))
	router.ServeFiles("/static/home/*filepath", http.Dir("static/home"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
	router.POST("/api/auth/forgot-password", rl.Limit(auth.ForgotPassword))
}

func AddHomeRoutes(router *httprouter.Router) {
	router.GET("/api/home", home.GetHome)
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/categories", catalog.GetCategories)
	router.GET("/api/products/:categoryslug", catalog.GetProductsByCategory)
	router.GET("/api/product/:productid", catalog.GetProduct)
	router.GET("/api/offers", catalog.GetOffers)
	router.GET("/api/search", catalog.SearchProducts)
	router.GET("/api/suggestions", catalog.SuggestProductNames)

	router.POST("/api/categories", middleware.Authenticate(catalog.CreateCategory))
	router.POST("/api/products", middleware.Authenticate(catalog.CreateProduct))
	router.PUT("/api/product/:productid", middleware.Authenticate(catalog.EditProduct))
	router.DELETE("/api/product/:productid", middleware.Authenticate(catalog.DeleteProduct))
	router.POST("/api/product/:productid/image", middleware.Authenticate(catalog.UploadProductImage))
	router.POST("/api/offers", middleware.Authenticate(catalog.CreateOffer))
	router.PUT("/api/offer/:offerid", middleware.Authenticate(catalog.EditOffer))
	router.DELETE("/api/offer/:offerid", middleware.Authenticate(catalog.DeleteOffer))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.OptionalAuth(cart.GetCart))
	router.GET("/api/cart/count", middleware.OptionalAuth(cart.CartCount))
	router.POST("/api/cart/product/:productid", middleware.Authenticate(cart.AddProductToCart))
	router.POST("/api/cart/offer/:offerid", middleware.Authenticate(cart.AddOfferToCart))
	router.POST("/api/cart/quantities", middleware.Authenticate(cart.UpdateQuantities))
	router.DELETE("/api/cart/item/:key", middleware.Authenticate(cart.RemoveFromCart))
}

func AddCheckoutRoutes(router *httprouter.Router) {
	router.POST("/api/checkout", middleware.Authenticate(checkout.Checkout))
	router.GET("/api/orders", middleware.Authenticate(checkout.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(checkout.GetOrder))
	router.PUT("/api/orders/:orderid/status", middleware.Authenticate(checkout.UpdateOrderStatus))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(checkout.PrintInvoice))
}

func AddAddressRoutes(router *httprouter.Router) {
	router.GET("/api/addresses", middleware.Authenticate(addresses.ListAddresses))
	router.POST("/api/addresses", middleware.Authenticate(addresses.CreateAddress))
	router.PUT("/api/addresses/:addressid", middleware.Authenticate(addresses.UpdateAddress))
	router.DELETE("/api/addresses/:addressid", middleware.Authenticate(addresses.DeleteAddress))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contactfm.SubmitContact))
}
