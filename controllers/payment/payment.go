package paymentController

import (
	"ecolearner/config"
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"
	"ecolearner/utils"
	"errors"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreatePaymentIntent asks the gateway for an intent covering the
// posted price. Amounts are converted to minor units here; nothing is
// written to the store until the client confirms and posts the payment.
func CreatePaymentIntent(gateway utils.PaymentGateway, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedIntent").(*struct {
			Price float64 `json:"price"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		amount := int64(math.Round(reqData.Price * 100))

		intent, err := gateway.CreateIntent(amount, cfg.PaymentCurrency)
		if err != nil {
			log.Printf("Error creating payment intent: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment gateway error, please try again!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created.", fiber.Map{
			"clientSecret": intent.ClientSecret,
		})
	}
}

// RecordPayment turns a confirmed payment into an enrollment. The seat
// decrement, enrolled increment and payment insert commit together: the
// class row is updated with a seats > 0 precondition in the same
// transaction that appends the Payment, so two students racing for the
// last seat can never both win and Seats can never go negative.
func RecordPayment(store *database.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		reqData, ok := c.Locals("validatedPayment").(*struct {
			ClassID       uint    `json:"classId"`
			TransactionID string  `json:"transactionId"`
			Price         float64 `json:"price"`
		})
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		var class models.Class
		if err := store.Db.First(&class, reqData.ClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch class!", nil)
		}

		// Repeat purchase of the same class is rejected; one payment
		// equals one seat equals one enrollment.
		var existing models.Payment
		if err := store.Db.Where("email = ? AND class_id = ?", email, reqData.ClassID).First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this class!", nil)
		}

		payment := models.Payment{
			Email:         email,
			ClassID:       reqData.ClassID,
			ClassName:     class.Name,
			TransactionID: reqData.TransactionID,
			Price:         reqData.Price,
			Date:          time.Now(),
		}

		tx := store.Db.Begin()
		if tx.Error != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
		}

		// Conditional atomic update: only a row with seats left matches,
		// so losing the race means zero rows affected and a full rollback.
		result := tx.Model(&models.Class{}).
			Where("id = ? AND seats > 0", reqData.ClassID).
			Updates(map[string]interface{}{
				"seats":             gorm.Expr("seats - 1"),
				"students_enrolled": gorm.Expr("students_enrolled + 1"),
			})
		if result.Error != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class is sold out!", nil)
		}

		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
		}

		// Clear the cart entry for this class; nothing to do if the
		// student paid without selecting first.
		if err := tx.Where("email = ? AND class_id = ?", email, reqData.ClassID).
			Delete(&models.SelectedClass{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
		}

		if err := tx.Commit().Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
		}

		if cfg.EmailSender != "" {
			go utils.SendEnrollmentEmail(cfg, email, class.Name, reqData.Price)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment recorded, enrollment confirmed.", payment)
	}
}

// PaymentHistory returns the caller's payments, newest first. The path
// email shapes the response only; a mismatch yields empty data.
func PaymentHistory(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		if requested := c.Params("email"); requested != email {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched.", []models.Payment{})
		}

		payments := []models.Payment{}
		if err := store.Db.Where("email = ?", email).Order("date desc").Find(&payments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched.", payments)
	}
}

// EnrolledClasses resolves the caller's payments into class records.
// Payments are authoritative for enrollment; the cart never is.
func EnrolledClasses(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		if requested := c.Params("email"); requested != email {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled classes fetched.", []models.Class{})
		}

		payments := []models.Payment{}
		if err := store.Db.Where("email = ?", email).Find(&payments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
		}

		seen := make(map[uint]bool)
		classIDs := make([]uint, 0, len(payments))
		for _, p := range payments {
			if !seen[p.ClassID] {
				seen[p.ClassID] = true
				classIDs = append(classIDs, p.ClassID)
			}
		}

		classes := []models.Class{}
		if len(classIDs) > 0 {
			if err := store.Db.Where("id IN ?", classIDs).Find(&classes).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
			}
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled classes fetched.", classes)
	}
}
