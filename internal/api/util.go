package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/service"
)

var careerCodeRegex = regexp.MustCompile("^[A-Z0-9]{6}$")

func normalizeCareerCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// sessionEmail returns the authenticated account email injected by the auth
// middleware, or "" when the request is unauthenticated.
func sessionEmail(c *gin.Context) string {
	if v, ok := c.Get("userEmail"); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}

// serviceError maps service sentinel errors onto HTTP statuses. Unknown
// errors become a 500 with a generic message so internals never leak.
func serviceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := constants.ErrFailedPerformAction
	switch {
	case errors.Is(err, service.ErrCareerNotFound):
		status, msg = http.StatusNotFound, constants.ErrCareerNotFound
	case errors.Is(err, service.ErrNotOwner):
		status, msg = http.StatusForbidden, constants.ErrNotCareerOwner
	case errors.Is(err, service.ErrNoPendingEvent):
		status, msg = http.StatusConflict, constants.ErrNoPendingEvent
	case errors.Is(err, service.ErrUnknownChoice):
		status, msg = http.StatusBadRequest, constants.ErrUnknownChoice
	case errors.Is(err, service.ErrEventPending),
		errors.Is(err, service.ErrTourInProgress),
		errors.Is(err, service.ErrTourBanned),
		errors.Is(err, service.ErrTrainingOnCooldown),
		errors.Is(err, service.ErrPromotionOnCooldown):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrSaveNotFound):
		status, msg = http.StatusNotFound, constants.ErrSaveNotFound
	case errors.Is(err, service.ErrBandNameRequired),
		errors.Is(err, service.ErrBandNameTooLong),
		errors.Is(err, service.ErrUnknownGenre),
		errors.Is(err, service.ErrUnknownDifficulty),
		errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrNothingToPromote),
		errors.Is(err, service.ErrVenueNotFound),
		errors.Is(err, service.ErrNotFamousYet),
		errors.Is(err, service.ErrTourNotFound),
		errors.Is(err, service.ErrAlbumNameRequired),
		errors.Is(err, service.ErrAlbumNameTaken),
		errors.Is(err, service.ErrTooFewSongs),
		errors.Is(err, service.ErrTooManySongs),
		errors.Is(err, service.ErrSongNotFound),
		errors.Is(err, service.ErrSongAlreadyOnAlbum),
		errors.Is(err, service.ErrBandFull),
		errors.Is(err, service.ErrBandAtMinimum),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrMaxTier),
		errors.Is(err, service.ErrAlreadyLawyer),
		errors.Is(err, service.ErrUnknownUpgrade),
		errors.Is(err, service.ErrSaveNameRequired),
		errors.Is(err, service.ErrSaveCorrupt),
		errors.Is(err, service.ErrSaveTooNew):
		status, msg = http.StatusBadRequest, err.Error()
	}
	c.JSON(status, gin.H{constants.JSONKeyError: msg})
}

// normalizeTimestamps recursively renames GORM timestamp keys from CamelCase
// to snake_case so clients consistently receive snake_case keys.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		for _, pair := range [][2]string{
			{"CreatedAt", "created_at"},
			{"UpdatedAt", "updated_at"},
			{"DeletedAt", "deleted_at"},
			{"ID", "id"},
		} {
			if val, ok := vv[pair[0]]; ok {
				vv[pair[1]] = val
				delete(vv, pair[0])
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalForContext marshals a value for an API response: GORM timestamp
// keys become snake_case and email fields that do not belong to the session
// user are removed so other accounts' emails are never exposed.
func MarshalForContext(c *gin.Context, v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	out = normalizeTimestamps(out)
	redactEmails(out, sessionEmail(c))
	return out, nil
}

// redactEmails walks a decoded JSON structure and deletes any field whose
// key contains "email" unless its value equals currentEmail.
func redactEmails(v interface{}, currentEmail string) {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			if strings.Contains(strings.ToLower(k), "email") {
				if s, ok := val.(string); ok && currentEmail != "" && s == currentEmail {
					continue
				}
				delete(vv, k)
				continue
			}
			redactEmails(val, currentEmail)
		}
	case []interface{}:
		for i := range vv {
			redactEmails(vv[i], currentEmail)
		}
	}
}
