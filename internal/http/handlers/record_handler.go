package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crud_testbench/internal/service"
	"crud_testbench/internal/validation"
)

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return 0, false
	}
	return id, true
}

// bindPayload decodes the body and runs check on it, answering 400 itself
// when either step fails.
func bindPayload[T any](c *gin.Context, check func(validation.RecordPayload) (T, error)) (T, bool) {
	var zero T
	var payload validation.RecordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return zero, false
	}

	out, err := check(payload)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": verrs})
			return zero, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return zero, false
	}
	return out, true
}

// ListRecords returns every record, newest first.
func ListRecords(svc *service.Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func GetRecord(svc *service.Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		rec, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
			return
		}
		if rec == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// CreateRecord validates the body before the service sees it, so rejected
// payloads never reach the operation log.
func CreateRecord(svc *service.Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := bindPayload(c, validation.RecordInsert)
		if !ok {
			return
		}

		rec, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

func UpdateRecord(svc *service.Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		patch, ok := bindPayload(c, validation.RecordUpdate)
		if !ok {
			return
		}

		rec, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
			return
		}
		if rec == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func DeleteRecord(svc *service.Records) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		deleted, err := svc.Delete(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Record deleted successfully"})
	}
}
