package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/alimgiray/tzroster/internal/models"
	"github.com/alimgiray/tzroster/internal/services"
	"github.com/alimgiray/tzroster/pkg/logger"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RosterHandler struct {
	rosterService *services.RosterService
	exportService *services.ExportService
}

func NewRosterHandler(rosterService *services.RosterService, exportService *services.ExportService) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		exportService: exportService,
	}
}

// ListPeople returns the roster in display order
func (h *RosterHandler) ListPeople(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"people": h.rosterService.People()})
}

// GetPerson returns a single roster entry
func (h *RosterHandler) GetPerson(c *gin.Context) {
	person, found := h.rosterService.Get(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}
	c.JSON(http.StatusOK, person)
}

// CreatePerson adds a person to the end of the roster
func (h *RosterHandler) CreatePerson(c *gin.Context) {
	var request models.PersonRequest
	if !bindPersonRequest(c, &request) {
		return
	}

	person, ok := h.rosterService.Add(request.Name, request.Zone)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Person was not added"})
		return
	}

	c.JSON(http.StatusCreated, person)
}

// UpdatePerson changes the name and zone of an existing person
func (h *RosterHandler) UpdatePerson(c *gin.Context) {
	var request models.PersonRequest
	if !bindPersonRequest(c, &request) {
		return
	}

	person, ok := h.rosterService.Edit(c.Param("id"), request.Name, request.Zone)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}

	c.JSON(http.StatusOK, person)
}

// DeletePerson removes a person. Unknown ids are accepted silently.
func (h *RosterHandler) DeletePerson(c *gin.Context) {
	h.rosterService.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ReorderPeople moves sourceId to the position of targetId
func (h *RosterHandler) ReorderPeople(c *gin.Context) {
	var request models.ReorderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	moved := h.rosterService.Reorder(request.SourceID, request.TargetID)
	if !moved && request.SourceID != request.TargetID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"moved":  moved,
		"people": h.rosterService.People(),
	})
}

// ListZones returns the supported time zone catalog
func (h *RosterHandler) ListZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"zones": models.ZoneCatalog()})
}

// ExportPeople downloads the roster as an xlsx workbook
func (h *RosterHandler) ExportPeople(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.WriteRosterWorkbook(&buf); err != nil {
		logger.WithError(err).Error("Failed to export roster")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export roster"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="people.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// bindPersonRequest parses and validates the body, answering 400 on failure
func bindPersonRequest(c *gin.Context, request *models.PersonRequest) bool {
	if err := c.ShouldBind(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return false
	}

	if err := request.Validate(); err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}

	return true
}
