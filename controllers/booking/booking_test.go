package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	bookingModel "appliance-booking/models/booking"
	"appliance-booking/repository"
	"appliance-booking/services/assignment"
	"appliance-booking/services/lifecycle"
	technicianTypes "appliance-booking/types/technician"

	technicianController "appliance-booking/controllers/technician"
)

type apiResponse struct {
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	bookings := repository.NewMemoryBookingRepository()
	technicians := repository.NewMemoryTechnicianRepository()
	customers := repository.NewMemoryCustomerRepository()
	engine := lifecycle.NewEngine(bookings, nil)
	assigner := assignment.NewService(bookings, technicians, engine)

	bc := NewBookingController(bookings, customers, engine, assigner)
	tc := technicianController.NewTechnicianController(technicians)

	app := fiber.New()
	api := app.Group("/api")

	bookingGroup := api.Group("/booking")
	bookingGroup.Post("/create", bc.Store)
	bookingGroup.Get("/list", bc.List)
	bookingGroup.Get("/unassigned", bc.Unassigned)
	bookingGroup.Post("/:id/confirm", bc.Confirm)
	bookingGroup.Post("/:id/assign", bc.Assign)
	bookingGroup.Get("/technician/:id", bc.ByTechnician)
	bookingGroup.Post("/:id/status", bc.UpdateStatus)
	bookingGroup.Post("/:id/complete", bc.Complete)
	bookingGroup.Get("/:id", bc.Show)

	technicianGroup := api.Group("/technician")
	technicianGroup.Post("/create", tc.Store)
	technicianGroup.Get("/list", tc.List)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, apiResponse) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	var out apiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode response %q: %v", string(raw), err)
	}
	return resp.StatusCode, out
}

func createBookingHTTP(t *testing.T, app *fiber.App, name string) bookingModel.Booking {
	t.Helper()
	code, resp := doJSON(t, app, http.MethodPost, "/api/booking/create", map[string]string{
		"name":         name,
		"phone":        "9876500000",
		"address":      "12 MG Road",
		"service_type": "Gas Filling",
	})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", code, resp.Message)
	}
	var b bookingModel.Booking
	if err := json.Unmarshal(resp.Data, &b); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	return b
}

func createTechnicianHTTP(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, resp := doJSON(t, app, http.MethodPost, "/api/technician/create", technicianTypes.TechnicianCreateRequest{
		Name:   "Rahul Kumar",
		Phone:  "9871000001",
		Skills: "Split AC, Installation",
	})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", code, resp.Message)
	}
	var data struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode technician: %v", err)
	}
	return data.ID
}

func TestStoreValidation(t *testing.T) {
	app := newTestApp()

	code, resp := doJSON(t, app, http.MethodPost, "/api/booking/create", map[string]string{
		"phone":   "9876500000",
		"address": "12 MG Road",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d (%s)", code, resp.Message)
	}

	code, resp = doJSON(t, app, http.MethodGet, "/api/booking/list", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var all []bookingModel.Booking
	if err := json.Unmarshal(resp.Data, &all); err != nil && len(resp.Data) > 0 && string(resp.Data) != "null" {
		t.Fatalf("decode bookings: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no bookings after rejected create, got %d", len(all))
	}
}

func TestCompleteWrongStateOverHTTP(t *testing.T) {
	app := newTestApp()
	b := createBookingHTTP(t, app, "Asha Rao")

	code, resp := doJSON(t, app, http.MethodPost, "/api/booking/"+b.ID+"/complete", map[string]float64{"amount": 1200})
	if code != http.StatusConflict {
		t.Fatalf("expected 409 for completing a Requested booking, got %d (%s)", code, resp.Message)
	}

	code, _ = doJSON(t, app, http.MethodPost, "/api/booking/missing/complete", map[string]float64{"amount": 1200})
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown booking, got %d", code)
	}
}

func TestWorkflowOverHTTP(t *testing.T) {
	app := newTestApp()

	b := createBookingHTTP(t, app, "Asha Rao")
	techID := createTechnicianHTTP(t, app)

	steps := []struct {
		path    string
		payload interface{}
	}{
		{fmt.Sprintf("/api/booking/%s/confirm", b.ID), nil},
		{fmt.Sprintf("/api/booking/%s/assign", b.ID), map[string]string{"technician_id": techID}},
		{fmt.Sprintf("/api/booking/%s/status", b.ID), map[string]string{"status": "On The Way"}},
		{fmt.Sprintf("/api/booking/%s/status", b.ID), map[string]string{"status": "Started"}},
		{fmt.Sprintf("/api/booking/%s/complete", b.ID), map[string]float64{"amount": 1200}},
	}
	for _, step := range steps {
		code, resp := doJSON(t, app, http.MethodPost, step.path, step.payload)
		if code != http.StatusOK {
			t.Fatalf("POST %s: expected 200, got %d (%s)", step.path, code, resp.Message)
		}
	}

	code, resp := doJSON(t, app, http.MethodGet, "/api/booking/"+b.ID, nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var final bookingModel.Booking
	if err := json.Unmarshal(resp.Data, &final); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if final.Status != bookingModel.BookingStatusCompleted {
		t.Fatalf("expected Completed, got %s", final.Status)
	}
	if final.Amount == nil || *final.Amount != 1200 {
		t.Fatalf("expected amount 1200, got %v", final.Amount)
	}
	if final.TechnicianID == nil || *final.TechnicianID != techID {
		t.Fatalf("expected technician binding to survive completion")
	}
	if len(final.History) != 6 {
		t.Fatalf("expected 6 history entries, got %d", len(final.History))
	}
}

func TestSearchOverHTTP(t *testing.T) {
	app := newTestApp()

	gas := createBookingHTTP(t, app, "Asha Rao")
	code, resp := doJSON(t, app, http.MethodPost, "/api/booking/create", map[string]string{
		"name":         "Vikram Mehta",
		"phone":        "9876511111",
		"address":      "4 Park Lane",
		"service_type": "AC Repair",
	})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", code, resp.Message)
	}

	code, resp = doJSON(t, app, http.MethodGet, "/api/booking/list?query=gas", nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var hits []bookingModel.Booking
	if err := json.Unmarshal(resp.Data, &hits); err != nil {
		t.Fatalf("decode bookings: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != gas.ID {
		t.Fatalf("expected exactly the Gas Filling booking, got %d hits", len(hits))
	}
}
