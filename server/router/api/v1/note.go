package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hublie/hublie/internal/util"
	"github.com/hublie/hublie/server/service/gating"
	"github.com/hublie/hublie/store"
)

type noteResponse struct {
	UID     string `json:"uid"`
	Title   string `json:"title"`
	Content string `json:"content"`
	// ContentHTML is the rendered markdown for display.
	ContentHTML string `json:"contentHtml"`
	Pinned      bool   `json:"pinned"`
	Color       string `json:"color"`
	CreatedTs   int64  `json:"createdTs"`
	UpdatedTs   int64  `json:"updatedTs"`
}

func (s *APIV1Service) convertNote(note *store.Note) *noteResponse {
	html, err := s.MarkdownService.RenderHTML(note.Content)
	if err != nil {
		html = ""
	}
	return &noteResponse{
		UID:         note.UID,
		Title:       note.Title,
		Content:     note.Content,
		ContentHTML: html,
		Pinned:      note.Pinned,
		Color:       note.Color,
		CreatedTs:   note.CreatedTs,
		UpdatedTs:   note.UpdatedTs,
	}
}

func (s *APIV1Service) convertNotes(notes []*store.Note) []*noteResponse {
	response := make([]*noteResponse, 0, len(notes))
	for _, note := range notes {
		response = append(response, s.convertNote(note))
	}
	return response
}

type createNoteRequest struct {
	CreatorUID string `json:"creatorUid"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Pinned     bool   `json:"pinned"`
	Color      string `json:"color"`
}

// CreateNote creates a shared note.
// POST /api/v1/households/:householdUid/notes
func (s *APIV1Service) CreateNote(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	if ok, err := s.checkLimit(c, household.ID, gating.FeatureNotes); !ok {
		return err
	}

	request := &createNoteRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}
	if request.Content == "" && request.Title == "" {
		return errorJSON(c, http.StatusBadRequest, "title or content is required")
	}

	creatorID := int32(0)
	if request.CreatorUID != "" {
		member, err := s.Store.GetMember(ctx, &store.FindMember{
			UID:         &request.CreatorUID,
			HouseholdID: &household.ID,
		})
		if err != nil {
			return errorJSON(c, http.StatusInternalServerError, "failed to get member")
		}
		if member == nil {
			return errorJSON(c, http.StatusNotFound, "creator not found")
		}
		creatorID = member.ID
	}

	note, err := s.Store.CreateNote(ctx, &store.Note{
		UID:         util.GenUID(),
		HouseholdID: household.ID,
		CreatorID:   creatorID,
		Title:       request.Title,
		Content:     request.Content,
		Pinned:      request.Pinned,
		Color:       request.Color,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to create note")
	}
	return c.JSON(http.StatusOK, s.convertNote(note))
}

// ListNotes returns notes, pinned first per store ordering.
// GET /api/v1/households/:householdUid/notes
func (s *APIV1Service) ListNotes(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}

	normal := store.Normal
	notes, err := s.Store.ListNotes(ctx, &store.FindNote{
		HouseholdID: &household.ID,
		RowStatus:   &normal,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to list notes")
	}
	return c.JSON(http.StatusOK, s.convertNotes(notes))
}

func (s *APIV1Service) noteFromPath(c echo.Context, householdID int32) (*store.Note, error) {
	uid := c.Param("noteUid")
	note, err := s.Store.GetNote(c.Request().Context(), &store.FindNote{
		UID:         &uid,
		HouseholdID: &householdID,
	})
	if err != nil {
		return nil, errorJSON(c, http.StatusInternalServerError, "failed to get note")
	}
	if note == nil {
		return nil, errorJSON(c, http.StatusNotFound, "note not found")
	}
	return note, nil
}

type updateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
	Color   *string `json:"color"`
}

// UpdateNote updates a note.
// PATCH /api/v1/households/:householdUid/notes/:noteUid
func (s *APIV1Service) UpdateNote(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	note, err := s.noteFromPath(c, household.ID)
	if note == nil {
		return err
	}

	request := &updateNoteRequest{}
	if err := c.Bind(request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "malformed request body")
	}

	now := time.Now().Unix()
	updated, err := s.Store.UpdateNote(ctx, &store.UpdateNote{
		ID:        note.ID,
		UpdatedTs: &now,
		Title:     request.Title,
		Content:   request.Content,
		Pinned:    request.Pinned,
		Color:     request.Color,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to update note")
	}
	return c.JSON(http.StatusOK, s.convertNote(updated))
}

// DeleteNote archives a note.
// DELETE /api/v1/households/:householdUid/notes/:noteUid
func (s *APIV1Service) DeleteNote(c echo.Context) error {
	ctx := c.Request().Context()
	household, err := s.householdFromPath(c)
	if household == nil {
		return err
	}
	note, err := s.noteFromPath(c, household.ID)
	if note == nil {
		return err
	}

	archived := store.Archived
	now := time.Now().Unix()
	if _, err := s.Store.UpdateNote(ctx, &store.UpdateNote{
		ID:        note.ID,
		UpdatedTs: &now,
		RowStatus: &archived,
	}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to archive note")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
