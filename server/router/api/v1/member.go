package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/store"
)

type memberResponse struct {
	UID       string     `json:"uid"`
	Name      string     `json:"name"`
	Role      store.Role `json:"role"`
	Color     string     `json:"color"`
	CreatedTs int64      `json:"createdTs"`
}

func convertMember(member *store.Member) *memberResponse {
	return &memberResponse{
		UID:       member.UID,
		Name:      member.Name,
		Role:      member.Role,
		Color:     member.Color,
		CreatedTs: member.CreatedTs,
	}
}

type createMemberRequest struct {
	Name  string     `json:"name"`
	Role  store.Role `json:"role"`
	Color string     `json:"color"`
}

// CreateMember adds a person to the household.
// POST /api/v1/households/:householdUid/members
func (s *APIV1Service) CreateMember(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	request := &createMemberRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Name == "" {
		return errorJSON(c, http.StatusBadRequest, "name is required")
	}
	switch request.Role {
	case store.RoleParent, store.RoleChild, store.RoleCaregiver:
	case "":
		request.Role = store.RoleParent
	default:
		return errorJSON(c, http.StatusBadRequest, "unknown role")
	}

	member, err := s.Store.CreateMember(ctx, &store.Member{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		Name:        request.Name,
		Role:        request.Role,
		Color:       request.Color,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create member")
	}
	return c.JSON(http.StatusOK, convertMember(member))
}

// ListMembers returns all active members of the household.
// GET /api/v1/households/:householdUid/members
func (s *APIV1Service) ListMembers(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	normal := store.Normal
	members, err := s.Store.ListMembers(ctx, &store.FindMember{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list members")
	}

	response := make([]*memberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, convertMember(member))
	}
	return c.JSON(http.StatusOK, response)
}

func (s *APIV1Service) memberFromPath(c echo.Context, householdID int32) (*store.Member, error) {
	uid := c.Param("memberUid")
	member, err := s.Store.GetMember(c.Request().Context(), &store.FindMember{
		UID:         &uid,
		HouseholdID: &householdID,
	})
	if err != nil {
		return nil, errorJSON(c, http.StatusInternalServerError, "failed to get member")
	}
	if member == nil {
		return nil, errorJSON(c, http.StatusNotFound, "member not found")
	}
	return member, nil
}

type updateMemberRequest struct {
	Name  *string     `json:"name"`
	Role  *store.Role `json:"role"`
	Color *string     `json:"color"`
}

// UpdateMember updates a member's name, role or color.
// PATCH /api/v1/households/:householdUid/members/:memberUid
func (s *APIV1Service) UpdateMember(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	member, err := s.memberFromPath(c, household.ID)
	if member == nil {
		return err
	}

	request := &updateMemberRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Role != nil {
		switch *request.Role {
		case store.RoleParent, store.RoleChild, store.RoleCaregiver:
		default:
			return errorJSON(c, http.StatusBadRequest, "unknown role")
		}
	}

	now := time.Now().Unix()
	updated, err := s.Store.UpdateMember(ctx, &store.UpdateMember{
		ID:        member.ID,
		UpdatedTs: &now,
		Name:      request.Name,
		Role:      request.Role,
		Color:     request.Color,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to update member")
	}
	return c.JSON(http.StatusOK, convertMember(updated))
}

// DeleteMember archives a member. Their completions and nominations remain
// so past leaderboards stay intact.
// DELETE /api/v1/households/:householdUid/members/:memberUid
func (s *APIV1Service) DeleteMember(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	member, err := s.memberFromPath(c, household.ID)
	if member == nil {
		return err
	}

	archived := store.Archived
	now := time.Now().Unix()
	if _, err := s.Store.UpdateMember(ctx, &store.UpdateMember{
		ID:        member.ID,
		UpdatedTs: &now,
		RowStatus: &archived,
	}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to archive member")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
