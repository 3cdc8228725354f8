package paymentRoutes

import (
	"ecolearner/config"
	paymentControllers "ecolearner/controllers/payment"
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/utils"
	paymentValidators "ecolearner/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App, store *database.Store, cfg *config.Config, gateway utils.PaymentGateway) {
	auth := middleware.JWTMiddleware(cfg)

	app.Post("/create-payment-intent", auth, paymentValidators.CreateIntent(), paymentControllers.CreatePaymentIntent(gateway, cfg))

	app.Post("/payments", auth, paymentValidators.RecordPayment(), paymentControllers.RecordPayment(store, cfg))
	app.Get("/payments/:email", auth, paymentControllers.PaymentHistory(store))

	app.Get("/enrollStudent/:email", auth, paymentControllers.EnrolledClasses(store))
}
