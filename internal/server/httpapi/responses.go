package httpapi

import "github.com/gin-gonic/gin"

// Machine-readable status tags used across responses. Guards answer with
// {signal, reason}; handlers answer with {status, note} plus payload fields.
const (
	statusOK        = "OK"
	statusCreated   = "CREATED"
	statusGranted   = "GRANTED"
	statusSuccess   = "SUCCESS"
	statusRejected  = "REJECTED"
	statusConflict  = "CONFLICT"
	statusMissing   = "MISSING"
	statusDenied    = "DENIED"
	statusBlocked   = "BLOCKED"
	statusDuplicate = "DUPLICATE"
	statusError     = "ERROR"
)

func statusNote(c *gin.Context, code int, status, note string) {
	c.JSON(code, gin.H{"status": status, "note": note})
}

// systemMalfunction is the single catch-all for storage/runtime faults.
// No detail leaks to the client.
func systemMalfunction(c *gin.Context, code int) {
	statusNote(c, code, statusError, "system malfunction")
}
