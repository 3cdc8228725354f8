package paymentValidator

import (
	"ecolearner/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Price <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"price": "Price must be greater than 0!",
			})
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

func RecordPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID       uint    `json:"classId"`
			TransactionID string  `json:"transactionId"`
			Price         float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassID == 0 {
			errors["classId"] = "Class ID is required!"
		}

		if strings.TrimSpace(reqData.TransactionID) == "" {
			errors["transactionId"] = "Transaction ID is required!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
