package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/store"
)

type billResponse struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	Payee       string `json:"payee"`
	DueTs       int64  `json:"dueTs"`
	Autopay     bool   `json:"autopay"`
	Paid        bool   `json:"paid"`
	PaidTs      *int64 `json:"paidTs,omitempty"`
	Overdue     bool   `json:"overdue"`
	CreatedTs   int64  `json:"createdTs"`
}

func convertBill(bill *store.Bill) *billResponse {
	return &billResponse{
		UID:         bill.UID,
		Name:        bill.Name,
		AmountCents: bill.AmountCents,
		Currency:    bill.Currency,
		Payee:       bill.Payee,
		DueTs:       bill.DueTs,
		Autopay:     bill.Autopay,
		Paid:        bill.Paid,
		PaidTs:      bill.PaidTs,
		Overdue:     !bill.Paid && bill.DueTs < time.Now().Unix(),
		CreatedTs:   bill.CreatedTs,
	}
}

func convertBills(bills []*store.Bill) []*billResponse {
	response := make([]*billResponse, 0, len(bills))
	for _, bill := range bills {
		response = append(response, convertBill(bill))
	}
	return response
}

type createBillRequest struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	Payee       string `json:"payee"`
	DueTs       int64  `json:"dueTs"`
	Autopay     bool   `json:"autopay"`
}

// CreateBill creates a bill to track until paid.
// POST /api/v1/households/:householdUid/bills
func (s *APIV1Service) CreateBill(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	request := &createBillRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Name == "" {
		return errorJSON(c, http.StatusBadRequest, "name is required")
	}
	if request.AmountCents < 0 {
		return errorJSON(c, http.StatusBadRequest, "amount cannot be negative")
	}
	if request.DueTs == 0 {
		return errorJSON(c, http.StatusBadRequest, "dueTs is required")
	}
	if request.Currency == "" {
		request.Currency = "USD"
	}

	bill, err := s.Store.CreateBill(ctx, &store.Bill{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        request.Name,
		AmountCents: request.AmountCents,
		Currency:    request.Currency,
		Payee:       request.Payee,
		DueTs:       request.DueTs,
		Autopay:     request.Autopay,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create bill")
	}
	return c.JSON(http.StatusOK, convertBill(bill))
}

// ListBills returns bills, optionally only unpaid ones.
// GET /api/v1/households/:householdUid/bills
func (s *APIV1Service) ListBills(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	normal := store.Normal
	find := &store.FindBill{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
	}
	if c.QueryParam("unpaid") == "true" {
		unpaid := false
		find.Paid = &unpaid
	}

	bills, err := s.Store.ListBills(ctx, find)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list bills")
	}
	return c.JSON(http.StatusOK, convertBills(bills))
}

func (s *APIV1Service) billFromPath(c echo.Context, householdID int32) (*store.Bill, error) {
	uid := c.Param("billUid")
	bill, err := s.Store.GetBill(c.Request().Context(), &store.FindBill{
		UID:         &uid,
		HouseholdID: &householdID,
	})
	if err != nil {
		return nil, errorJSON(c, http.StatusInternalServerError, "failed to get bill")
	}
	if bill == nil {
		return nil, errorJSON(c, http.StatusNotFound, "bill not found")
	}
	return bill, nil
}

type updateBillRequest struct {
	Name        *string `json:"name"`
	AmountCents *int64  `json:"amountCents"`
	Currency    *string `json:"currency"`
	Payee       *string `json:"payee"`
	DueTs       *int64  `json:"dueTs"`
	Autopay     *bool   `json:"autopay"`
}

// UpdateBill updates bill fields. Marking paid goes through PayBill so the
// activity feed stays consistent.
// PATCH /api/v1/households/:householdUid/bills/:billUid
func (s *APIV1Service) UpdateBill(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	bill, err := s.billFromPath(c, household.ID)
	if bill == nil {
		return err
	}

	request := &updateBillRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.AmountCents != nil && *request.AmountCents < 0 {
		return errorJSON(c, http.StatusBadRequest, "amount cannot be negative")
	}

	now := time.Now().Unix()
	updated, err := s.Store.UpdateBill(ctx, &store.UpdateBill{
		ID:          bill.ID,
		UpdatedTs:   &now,
		Name:        request.Name,
		AmountCents: request.AmountCents,
		Currency:    request.Currency,
		Payee:       request.Payee,
		DueTs:       request.DueTs,
		Autopay:     request.Autopay,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to update bill")
	}
	return c.JSON(http.StatusOK, convertBill(updated))
}

// DeleteBill archives a bill.
// DELETE /api/v1/households/:householdUid/bills/:billUid
func (s *APIV1Service) DeleteBill(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	bill, err := s.billFromPath(c, household.ID)
	if bill == nil {
		return err
	}

	archived := store.Archived
	now := time.Now().Unix()
	if _, err := s.Store.UpdateBill(ctx, &store.UpdateBill{
		ID:        bill.ID,
		UpdatedTs: &now,
		RowStatus: &archived,
	}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to archive bill")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

type payBillRequest struct {
	MemberUID string `json:"memberUid"`
}

// PayBill marks a bill paid and records it on the activity feed.
// POST /api/v1/households/:householdUid/bills/:billUid/pay
func (s *APIV1Service) PayBill(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	bill, err := s.billFromPath(c, household.ID)
	if bill == nil {
		return err
	}
	if bill.Paid {
		return errorJSON(c, http.StatusConflict, "bill is already paid")
	}

	request := &payBillRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	var actorID *int32
	if request.MemberUID != "" {
		member, err := s.Store.GetMember(ctx, &store.FindMember{
			UID:         &request.MemberUID,
			HouseholdID: &household.ID,
		})
		if err == nil && member != nil {
			actorID = &member.ID
		}
	}

	paid := true
	now := time.Now().Unix()
	updated, err := s.Store.UpdateBill(ctx, &store.UpdateBill{
		ID:        bill.ID,
		UpdatedTs: &now,
		Paid:      &paid,
		PaidTs:    &now,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to pay bill")
	}
	s.recordActivity(ctx, household.ID, actorID, store.ActivityBillPaid, map[string]any{
		"billUid":     bill.UID,
		"name":        bill.Name,
		"amountCents": bill.AmountCents,
	})

	return c.JSON(http.StatusOK, convertBill(updated))
}
