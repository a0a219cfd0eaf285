package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivitiesSuccessResponse is the success response envelope for GET /activities (200).
type ListActivitiesSuccessResponse struct {
	Data  map[string]*domain.Activity `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, including its current roster.
// @Tags activities
// @Produce json
// @Success 200 {object} controllers.ListActivitiesSuccessResponse "data maps activity name to activity"
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.ListActivities(r.Context()))
}

// GetActivitySuccessResponse is the success response envelope for GET /activities/{activityName} (200).
type GetActivitySuccessResponse struct {
	Data  *domain.Activity  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetActivity godoc
// @Summary Get one activity
// @Description Returns description, schedule, capacity and roster of the named activity.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Success 200 {object} controllers.GetActivitySuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /activities/{activityName} [get]
func (c *ActivityController) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := c.Service.GetActivity(r.Context(), r.PathValue("activityName"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, activity)
}

// SignupSuccessResponse is the success response envelope for POST /activities/{activityName}/signup (200).
type SignupSuccessResponse struct {
	Data  *domain.SignupResult `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Signup godoc
// @Summary Sign up a student for an activity
// @Description Adds the email to the activity's roster. Checks run in order: activity exists, email not already registered, roster not full.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} controllers.SignupSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, already_registered or capacity_exceeded"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		email = r.PostFormValue("email")
	}
	res, err := c.Service.Signup(r.Context(), r.PathValue("activityName"), email)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// ListSignupsSuccessResponse is the success response envelope for GET /activities/{activityName}/signups (200).
type ListSignupsSuccessResponse struct {
	Data  []*domain.SignupLogEntry `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ListSignups godoc
// @Summary List recorded signups for an activity
// @Description Returns the signup audit log for the activity, oldest first. Empty when no log database is configured.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Success 200 {object} controllers.ListSignupsSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities/{activityName}/signups [get]
func (c *ActivityController) ListSignups(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.SignupHistory(r.Context(), r.PathValue("activityName"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// GetProjection godoc
// @Summary Get a derived view of an activity
// @Description Returns one field (schedule, description, max_participants, current_participants, participant_count, participant_emails_count, remaining_spots, is_full, is_open, is_participant) or one rendering of the roster (participant_emails, participant_details, participant_emails_csv, _tsv, _html, _xml, _yaml, _markdown, _plaintext, _string, _json, _json_list, _json_array, _json_object, _json_string, _json_object_list, _json_object_array). The value is reported under the projection name; "participants" returns the bare list.
// @Tags projections
// @Produce json
// @Param activityName path string true "Activity name"
// @Param projection path string true "Projection name"
// @Param email query string false "Student email (is_participant only)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /activities/{activityName}/{projection} [get]
func (c *ActivityController) GetProjection(w http.ResponseWriter, r *http.Request) {
	p, ok := domain.LookupProjection(r.PathValue("projection"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "unknown projection")
		return
	}
	c.writeProjection(w, r, p)
}

// GetRoster godoc
// @Summary Render an activity's roster
// @Description Renders the participants list in the requested format: list, details, comma_space, csv, tsv, html, xml, yaml, markdown, plaintext, json_string, json_object.
// @Tags projections
// @Produce json
// @Param activityName path string true "Activity name"
// @Param format query string false "Roster format (default list)"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /activities/{activityName}/roster [get]
func (c *ActivityController) GetRoster(w http.ResponseWriter, r *http.Request) {
	format := domain.RosterList
	if s := r.URL.Query().Get("format"); s != "" {
		f, err := domain.ParseRosterFormat(s)
		if err != nil {
			c.writeError(w, r, err)
			return
		}
		format = f
	}
	c.writeProjection(w, r, domain.RosterProjection(format))
}

func (c *ActivityController) writeProjection(w http.ResponseWriter, r *http.Request, p domain.Projection) {
	var email string
	if p.NeedsEmail() {
		email = r.URL.Query().Get("email")
		if email == "" {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "email is required")
			return
		}
	}
	value, err := c.Service.Project(r.Context(), r.PathValue("activityName"), p, email)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if p.Bare {
		helpers.WriteJSONSuccess(w, http.StatusOK, value)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]any{p.Name: value})
}

// writeError maps domain errors to status codes; anything else is a 500.
func (c *ActivityController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeAlreadyRegistered, "Student already signed up")
	case errors.Is(err, domain.ErrCapacityExceeded):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeCapacityExceeded, "Maximum participants reached")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
