package paymentController_test

import (
	"bytes"
	"ecolearner/models"
	"ecolearner/testutil"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentBody(classID uint, txn string, price float64) fiber.Map {
	return fiber.Map{"classId": classID, "transactionId": txn, "price": price}
}

func TestCreatePaymentIntentConvertsToMinorUnits(t *testing.T) {
	app, _, cfg, gateway := testutil.NewApp(t)

	token := testutil.Token(t, cfg, "alice@x.com")

	status, resp := testutil.Request(t, app, "POST", "/create-payment-intent", token,
		fiber.Map{"price": 50.0})
	assert.Equal(t, fiber.StatusOK, status)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "pi_test_secret", data["clientSecret"])

	require.Len(t, gateway.Calls, 1)
	assert.EqualValues(t, 5000, gateway.Calls[0].Amount)
	assert.Equal(t, "usd", gateway.Calls[0].Currency)
}

func TestCreatePaymentIntentFailures(t *testing.T) {
	app, _, cfg, gateway := testutil.NewApp(t)
	token := testutil.Token(t, cfg, "alice@x.com")

	// Unauthenticated callers never reach the gateway
	status, _ := testutil.Request(t, app, "POST", "/create-payment-intent", "",
		fiber.Map{"price": 50.0})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Empty(t, gateway.Calls)

	// Gateway failure surfaces as a distinct upstream error
	gateway.Err = fmt.Errorf("processor unavailable")
	status, _ = testutil.Request(t, app, "POST", "/create-payment-intent", token,
		fiber.Map{"price": 50.0})
	assert.Equal(t, fiber.StatusBadGateway, status)

	// Zero price is rejected up front
	gateway.Err = nil
	status, _ = testutil.Request(t, app, "POST", "/create-payment-intent", token,
		fiber.Map{"price": 0})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestRecordPaymentConsumesOneSeat(t *testing.T) {
	app, store, cfg, _ := testutil.NewApp(t)
	class := testutil.SeedClass(t, store, "Forest Ecology", 50, 30)

	// Alice selected first, as the normal flow does
	selection := models.SelectedClass{Email: "alice@x.com", ClassID: class.ID, ClassName: class.Name}
	require.NoError(t, store.Db.Create(&selection).Error)

	token := testutil.Token(t, cfg, "alice@x.com")

	status, resp := testutil.Request(t, app, "POST", "/payments", token,
		paymentBody(class.ID, "txn_123", 50))
	assert.Equal(t, fiber.StatusCreated, status)

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "txn_123", data["transactionId"])

	var fresh models.Class
	require.NoError(t, store.Db.First(&fresh, class.ID).Error)
	assert.Equal(t, 29, fresh.Seats)
	assert.Equal(t, 1, fresh.StudentsEnrolled)

	// The cart entry is gone
	var selections int64
	require.NoError(t, store.Db.Model(&models.SelectedClass{}).Count(&selections).Error)
	assert.EqualValues(t, 0, selections)

	var payments int64
	require.NoError(t, store.Db.Model(&models.Payment{}).Count(&payments).Error)
	assert.EqualValues(t, 1, payments)
}

func TestRecordPaymentSoldOut(t *testing.T) {
	app, store, cfg, _ := testutil.NewApp(t)
	class := testutil.SeedClass(t, store, "Tiny Workshop", 20, 0)

	status, resp := testutil.Request(t, app, "POST", "/payments",
		testutil.Token(t, cfg, "alice@x.com"), paymentBody(class.ID, "txn_1", 20))
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, resp["message"], "sold out")

	// No partial mutation: no payment row, counters untouched
	var payments int64
	require.NoError(t, store.Db.Model(&models.Payment{}).Count(&payments).Error)
	assert.EqualValues(t, 0, payments)

	var fresh models.Class
	require.NoError(t, store.Db.First(&fresh, class.ID).Error)
	assert.Equal(t, 0, fresh.Seats)
	assert.Equal(t, 0, fresh.StudentsEnrolled)
}

func TestRecordPaymentRejectsRepeatPurchase(t *testing.T) {
	app, store, cfg, _ := testutil.NewApp(t)
	class := testutil.SeedClass(t, store, "Forest Ecology", 50, 30)
	token := testutil.Token(t, cfg, "alice@x.com")

	status, _ := testutil.Request(t, app, "POST", "/payments", token,
		paymentBody(class.ID, "txn_1", 50))
	require.Equal(t, fiber.StatusCreated, status)

	status, resp := testutil.Request(t, app, "POST", "/payments", token,
		paymentBody(class.ID, "txn_2", 50))
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, resp["message"], "Already enrolled")

	var payments int64
	require.NoError(t, store.Db.Model(&models.Payment{}).Count(&payments).Error)
	assert.EqualValues(t, 1, payments)

	var fresh models.Class
	require.NoError(t, store.Db.First(&fresh, class.ID).Error)
	assert.Equal(t, 29, fresh.Seats)
	assert.Equal(t, 1, fresh.StudentsEnrolled)
}

func TestRecordPaymentUnknownClass(t *testing.T) {
	app, _, cfg, _ := testutil.NewApp(t)

	status, _ := testutil.Request(t, app, "POST", "/payments",
		testutil.Token(t, cfg, "alice@x.com"), paymentBody(9999, "txn_1", 50))
	assert.Equal(t, fiber.StatusNotFound, status)
}

// Two students race for the last seat: exactly one wins, the loser's
// payment is never persisted and the counter never dips below zero.
func TestRecordPaymentLastSeatRace(t *testing.T) {
	app, store, cfg, _ := testutil.NewApp(t)
	class := testutil.SeedClass(t, store, "Last Seat", 50, 1)

	emails := []string{"alice@x.com", "bob@x.com"}
	tokens := []string{
		testutil.Token(t, cfg, emails[0]),
		testutil.Token(t, cfg, emails[1]),
	}
	statuses := make([]int, len(emails))

	var wg sync.WaitGroup
	for i := range emails {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			raw, _ := json.Marshal(paymentBody(class.ID, fmt.Sprintf("txn_%d", i), 50))
			req, _ := http.NewRequest("POST", "/payments", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+tokens[i])

			resp, err := app.Test(req, 10000)
			if err != nil {
				statuses[i] = -1
				return
			}
			resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for _, s := range statuses {
		switch s {
		case fiber.StatusCreated:
			wins++
		case fiber.StatusConflict:
			losses++
		default:
			t.Fatalf("unexpected status %d", s)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, losses)

	var fresh models.Class
	require.NoError(t, store.Db.First(&fresh, class.ID).Error)
	assert.Equal(t, 0, fresh.Seats)
	assert.Equal(t, 1, fresh.StudentsEnrolled)

	var payments int64
	require.NoError(t, store.Db.Model(&models.Payment{}).Count(&payments).Error)
	assert.EqualValues(t, 1, payments)
}

func TestPaymentHistoryNewestFirst(t *testing.T) {
	app, store, cfg, _ := testutil.NewApp(t)

	older := models.Payment{Email: "alice@x.com", ClassID: 1, TransactionID: "txn_old",
		Price: 10, Date: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, store.Db.Create(&older).Error)
	newer := models.Payment{Email: "alice@x.com", ClassID: 2, TransactionID: "txn_new",
		Price: 20, Date: time.Now()}
	require.NoError(t, store.Db.Create(&newer).Error)

	token := testutil.Token(t, cfg, "alice@x.com")

	status, resp := testutil.Request(t, app, "GET", "/payments/alice@x.com", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "txn_new", first["transactionId"])

	// Someone else's history shapes to empty data
	status, resp = testutil.Request(t, app, "GET", "/payments/bob@x.com", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, resp["data"], 0)
}

func TestEnrolledClassesDerivedFromPayments(t *testing.T) {
	app, store, cfg, _ := testutil.NewApp(t)
	classA := testutil.SeedClass(t, store, "Class A", 50, 30)
	classB := testutil.SeedClass(t, store, "Class B", 60, 10)

	for i, classID := range []uint{classA.ID, classB.ID} {
		payment := models.Payment{Email: "alice@x.com", ClassID: classID,
			TransactionID: fmt.Sprintf("txn_%d", i), Price: 50, Date: time.Now()}
		require.NoError(t, store.Db.Create(&payment).Error)
	}

	// A lingering cart entry must not count as enrollment
	leftover := models.SelectedClass{Email: "alice@x.com", ClassID: 9999}
	require.NoError(t, store.Db.Create(&leftover).Error)

	token := testutil.Token(t, cfg, "alice@x.com")

	status, resp := testutil.Request(t, app, "GET", "/enrollStudent/alice@x.com", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, resp["data"], 2)

	status, _ = testutil.Request(t, app, "GET", "/enrollStudent/alice@x.com", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
