package routes

import (
	"mobitrack/auth"
	"mobitrack/batches"
	"mobitrack/bookings"
	"mobitrack/cards"
	"mobitrack/dealers"
	"mobitrack/inventory"
	"mobitrack/middleware"
	"mobitrack/platforms"
	"mobitrack/ratelim"
	"mobitrack/similarity"
	"mobitrack/users"
	"mobitrack/wallet"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/bookings", middleware.Authenticate(bookings.GetBookings))
	router.GET("/api/bookings/export", middleware.Authenticate(bookings.ExportBookings))
	router.POST("/api/bookings", rl.Limit(middleware.Authenticate(bookings.CreateBooking)))
	router.PATCH("/api/bookings/:id/status", middleware.Authenticate(bookings.UpdateStatus))
	router.PATCH("/api/bookings/:id/mark-user-paid", middleware.AdminOnly(bookings.MarkUserPaid))
	router.PUT("/api/bookings/:id", middleware.Authenticate(bookings.UpdateBooking))
	router.DELETE("/api/bookings/:id", middleware.Authenticate(bookings.DeleteBooking))
}

func AddCardRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/cards", middleware.Authenticate(cards.GetCards))
	router.POST("/api/cards", rl.Limit(middleware.Authenticate(cards.CreateCard)))
	router.POST("/api/cards/amountpay", middleware.Authenticate(cards.AmountPay))
	router.PUT("/api/cards/:id", middleware.Authenticate(cards.UpdateCard))
	router.DELETE("/api/cards/:id", middleware.Authenticate(cards.DeleteCard))
}

func AddPlatformRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/platforms", middleware.Authenticate(platforms.GetPlatforms))
	router.POST("/api/platforms", rl.Limit(middleware.Authenticate(platforms.CreatePlatform)))
	router.PUT("/api/platforms/:id", middleware.Authenticate(platforms.UpdatePlatform))
	router.DELETE("/api/platforms/:id", middleware.Authenticate(platforms.DeletePlatform))
}

func AddDealerRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/dealers", middleware.AdminOnly(dealers.GetDealers))
	router.POST("/api/dealers", rl.Limit(middleware.AdminOnly(dealers.CreateDealer)))
	router.PUT("/api/dealers/:id", middleware.AdminOnly(dealers.UpdateDealer))
	router.DELETE("/api/dealers/:id", middleware.AdminOnly(dealers.DeleteDealer))
}

func AddUserRoutes(router *httprouter.Router) {
	router.GET("/api/users", middleware.AdminOnly(users.GetUsers))
	router.GET("/api/users/:id", middleware.AdminOnly(users.GetUser))
	router.PUT("/api/users/:id", middleware.AdminOnly(users.UpdateUser))
	router.DELETE("/api/users/:id", middleware.AdminOnly(users.DeleteUser))
}

func AddInventoryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/inventory/user", middleware.Authenticate(inventory.GetUserInventory))
	router.GET("/api/inventory/admin", middleware.AdminOnly(inventory.GetAdminInventory))
	router.GET("/api/inventory/stats", middleware.Authenticate(inventory.GetStats))
	router.POST("/api/inventory/assign-to-dealer", rl.Limit(middleware.AdminOnly(inventory.AssignToDealer)))
	router.PATCH("/api/inventory/user-payment/:bookingId", middleware.AdminOnly(inventory.MarkUserPayment))
}

func AddDealerBatchRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/dealer-batches", middleware.AdminOnly(batches.GetBatches))
	router.GET("/api/dealer-batches/:id", middleware.AdminOnly(batches.GetBatch))
	// httprouter cannot mix a static "dealer" segment with the :id wildcard,
	// so /api/dealer-batches/dealer/:dealerId is dispatched inside the handler.
	router.GET("/api/dealer-batches/:id/:dealerId", middleware.AdminOnly(batches.GetBatchesByDealer))
	router.PATCH("/api/dealer-batches/:id/add-payment", rl.Limit(middleware.AdminOnly(batches.AddPayment)))
}

func AddWalletRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/wallet", middleware.AdminOnly(wallet.GetWallet))
	router.POST("/api/wallet/add-profit", rl.Limit(middleware.AdminOnly(wallet.WithdrawProfit)))
}

func AddSimilarityRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/similarity/group-items", rl.Limit(similarity.GroupItemsHandler))
}
