package v1

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/server/service/gating"
	"github.com/hublie/hublie/store"
)

const caregiverCodeDigits = 6

// defaultCaregiverAccessTTL bounds how long a shared code works when the
// request does not say.
const defaultCaregiverAccessTTL = 14 * 24 * time.Hour

type caregiverAccessResponse struct {
	ID        int32  `json:"id"`
	MemberUID string `json:"memberUid"`
	Sections  string `json:"sections"`
	CreatedTs int64  `json:"createdTs"`
	ExpiresTs int64  `json:"expiresTs"`
	// Code is only set on creation; the server stores a hash.
	Code string `json:"code,omitempty"`
}

type createCaregiverAccessRequest struct {
	Name      string `json:"name"`
	Sections  string `json:"sections"`
	ExpiresTs int64  `json:"expiresTs"`
}

// CreateCaregiverAccess creates a caregiver member plus a time-boxed access
// code. The plaintext code appears once in the response and is never stored.
// POST /api/v1/households/:householdUid/caregiver-accesses
func (s *APIV1Service) CreateCaregiverAccess(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	if ok, err := s.checkLimit(c, household.ID, gating.FeatureCaregivers); !ok {
		return err
	}

	request := &createCaregiverAccessRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Name == "" {
		return errorJSON(c, http.StatusBadRequest, "name is required")
	}
	if request.Sections == "" {
		request.Sections = "events,chores,notes"
	}
	if request.ExpiresTs == 0 {
		request.ExpiresTs = time.Now().Add(defaultCaregiverAccessTTL).Unix()
	}
	if request.ExpiresTs <= time.Now().Unix() {
		return errorJSON(c, http.StatusBadRequest, "expiry must be in the future")
	}

	code, err := generateCaregiverCode()
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to generate access code")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to hash access code")
	}

	member, err := s.Store.CreateMember(ctx, &store.Member{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        request.Name,
		Role:        store.RoleCaregiver,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create caregiver member")
	}

	access, err := s.Store.CreateCaregiverAccess(ctx, &store.CaregiverAccess{
		HouseholdID: household.ID,
		MemberID:    member.ID,
		CodeHash:    string(hash),
		Sections:    request.Sections,
		ExpiresTs:   request.ExpiresTs,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create caregiver access")
	}

	return c.JSON(http.StatusOK, &caregiverAccessResponse{
		ID:        access.ID,
		MemberUID: member.UID,
		Sections:  access.Sections,
		CreatedTs: access.CreatedTs,
		ExpiresTs: access.ExpiresTs,
		Code:      code,
	})
}

// ListCaregiverAccesses returns the household's caregiver grants without
// their codes.
// GET /api/v1/households/:householdUid/caregiver-accesses
func (s *APIV1Service) ListCaregiverAccesses(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	accesses, err := s.Store.ListCaregiverAccesses(ctx, &store.FindCaregiverAccess{HouseholdID: &household.ID})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list caregiver accesses")
	}

	response := make([]*caregiverAccessResponse, 0, len(accesses))
	for _, access := range accesses {
		entry := &caregiverAccessResponse{
			ID:        access.ID,
			Sections:  access.Sections,
			CreatedTs: access.CreatedTs,
			ExpiresTs: access.ExpiresTs,
		}
		if member, err := s.Store.GetMember(ctx, &store.FindMember{ID: &access.MemberID}); err == nil && member != nil {
			entry.MemberUID = member.UID
		}
		response = append(response, entry)
	}
	return c.JSON(http.StatusOK, response)
}

type verifyCaregiverCodeRequest struct {
	Code string `json:"code"`
}

type verifyCaregiverCodeResponse struct {
	Valid     bool   `json:"valid"`
	MemberUID string `json:"memberUid,omitempty"`
	Sections  string `json:"sections,omitempty"`
	ExpiresTs int64  `json:"expiresTs,omitempty"`
}

// VerifyCaregiverCode checks a shared code against the household's active
// grants. Expired grants never validate.
// POST /api/v1/households/:householdUid/caregiver-accesses/verify
func (s *APIV1Service) VerifyCaregiverCode(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	request := &verifyCaregiverCodeRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Code == "" {
		return errorJSON(c, http.StatusBadRequest, "code is required")
	}

	accesses, err := s.Store.ListCaregiverAccesses(ctx, &store.FindCaregiverAccess{HouseholdID: &household.ID})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list caregiver accesses")
	}

	now := time.Now().Unix()
	for _, access := range accesses {
		if access.ExpiresTs <= now {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(access.CodeHash), []byte(request.Code)) != nil {
			continue
		}
		response := &verifyCaregiverCodeResponse{
			Valid:     true,
			Sections:  access.Sections,
			ExpiresTs: access.ExpiresTs,
		}
		if member, err := s.Store.GetMember(ctx, &store.FindMember{ID: &access.MemberID}); err == nil && member != nil {
			response.MemberUID = member.UID
		}
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusOK, &verifyCaregiverCodeResponse{Valid: false})
}

// DeleteCaregiverAccess revokes a grant immediately.
// DELETE /api/v1/households/:householdUid/caregiver-accesses/:accessId
func (s *APIV1Service) DeleteCaregiverAccess(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	accessID, err := strconv.ParseInt(c.Param("accessId"), 10, 32)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid access id")
	}
	id := int32(accessID)
	accesses, err := s.Store.ListCaregiverAccesses(ctx, &store.FindCaregiverAccess{
		ID:          &id,
		HouseholdID: &household.ID,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to get caregiver access")
	}
	if len(accesses) == 0 {
		return errorJSON(c, http.StatusNotFound, "caregiver access not found")
	}

	if err := s.Store.DeleteCaregiverAccess(ctx, &store.DeleteCaregiverAccess{ID: id}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to revoke caregiver access")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func generateCaregiverCode() (string, error) {
	// rand.Int keeps the digit distribution uniform; reducing raw bytes
	// mod 10 would skew toward 0-5.
	code := make([]byte, caregiverCodeDigits)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
