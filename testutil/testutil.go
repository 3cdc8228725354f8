package testutil

import (
	"bytes"
	"ecolearner/config"
	"ecolearner/database"
	"ecolearner/middleware"
	"ecolearner/models"
	authRoutes "ecolearner/routers/authRoutes"
	classRoutes "ecolearner/routers/classRoutes"
	paymentRoutes "ecolearner/routers/paymentRoutes"
	selectionRoutes "ecolearner/routers/selectionRoutes"
	userRoutes "ecolearner/routers/userRoutes"
	"ecolearner/utils"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestConfig returns configuration suitable for tests
func NewTestConfig() *config.Config {
	return &config.Config{
		Port:             "0",
		JWTKey:           "test-secret",
		JWTExpiry:        2 * time.Hour,
		PaymentCurrency:  "usd",
		SelectionTTLDays: 30,
	}
}

// NewTestStore opens a private in-memory sqlite database with the full
// schema. A single connection keeps concurrent test requests serialized
// the way the store's atomic update guarantee expects.
func NewTestStore(t *testing.T) *database.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get test database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	store := &database.Store{Db: db}
	t.Cleanup(func() { store.Close() })
	return store
}

// FakeGateway records intent calls instead of hitting a processor
type FakeGateway struct {
	mu    sync.Mutex
	Calls []IntentCall
	Err   error
}

type IntentCall struct {
	Amount   int64
	Currency string
}

func (g *FakeGateway) CreateIntent(amountMinorUnits int64, currency string) (utils.PaymentIntent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Err != nil {
		return utils.PaymentIntent{}, g.Err
	}

	g.Calls = append(g.Calls, IntentCall{Amount: amountMinorUnits, Currency: currency})
	return utils.PaymentIntent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
	}, nil
}

// NewApp wires the full route surface against a fresh store and a fake
// payment gateway
func NewApp(t *testing.T) (*fiber.App, *database.Store, *config.Config, *FakeGateway) {
	t.Helper()

	cfg := NewTestConfig()
	store := NewTestStore(t)
	gateway := &FakeGateway{}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, cfg)
	userRoutes.SetupUserRoutes(app, store, cfg)
	classRoutes.SetupClassRoutes(app, store, cfg)
	selectionRoutes.SetupSelectionRoutes(app, store, cfg)
	paymentRoutes.SetupPaymentRoutes(app, store, cfg, gateway)

	return app, store, cfg, gateway
}

// Token signs a JWT for the given email with the test secret
func Token(t *testing.T, cfg *config.Config, email string) string {
	t.Helper()

	token, err := middleware.GenerateJWT(cfg, email)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

// SeedUser inserts a user with the given role
func SeedUser(t *testing.T, store *database.Store, email, role string) models.User {
	t.Helper()

	user := models.User{Name: "Test User", Email: email, Role: role}
	if err := store.Db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

// SeedClass inserts an approved class with the given capacity
func SeedClass(t *testing.T, store *database.Store, name string, price float64, seats int) models.Class {
	t.Helper()

	class := models.Class{
		Name:            name,
		InstructorName:  "Inga Instructor",
		InstructorEmail: "inga@example.com",
		Price:           price,
		Seats:           seats,
		Status:          models.ClassStatusApproved,
	}
	if err := store.Db.Create(&class).Error; err != nil {
		t.Fatalf("failed to seed class %s: %v", name, err)
	}
	return class
}

// Request executes an HTTP request against the app, optionally with a
// bearer token and JSON body, and decodes the JSON response
func Request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	decoded := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("failed to decode response %q: %v", string(raw), err)
		}
	}

	return resp.StatusCode, decoded
}
