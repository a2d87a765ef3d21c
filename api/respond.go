package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Daniyal1234-alt/hotelops/internal/repository"
	"github.com/Daniyal1234-alt/hotelops/internal/service/auth"
	"github.com/Daniyal1234-alt/hotelops/internal/service/booking"
	"github.com/Daniyal1234-alt/hotelops/internal/service/feedback"
	"github.com/Daniyal1234-alt/hotelops/internal/service/rooms"
	"github.com/Daniyal1234-alt/hotelops/internal/service/users"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// businessErrors are reported to the caller verbatim with a 400 (404 for
// plain not-found lookups). Anything else is an infrastructure failure
// and surfaces as an opaque 500.
var businessErrors = []error{
	booking.ErrMissingFields,
	booking.ErrInvalidDateRange,
	booking.ErrAccountNotRegistered,
	booking.ErrNotCancellable,
	booking.ErrNotCheckinable,
	booking.ErrNotCheckoutable,
	repository.ErrRoomUnavailable,
	repository.ErrDateConflict,
	repository.ErrRoomNumberExists,
	repository.ErrEmailExists,
	rooms.ErrInvalidRoom,
	rooms.ErrInvalidStatus,
	auth.ErrInvalidCredentials,
	auth.ErrMissingFields,
	users.ErrMissingFields,
	feedback.ErrNotEligibleForFeedback,
	feedback.ErrInvalidRating,
	feedback.ErrMissingFields,
}

func fail(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
		return
	}
	for _, known := range businessErrors {
		if errors.Is(err, known) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": known.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// pathID parses the :id path parameter; on failure it writes the error
// response itself.
func pathID(c *gin.Context) (int64, bool) {
	return paramID(c, "id")
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
