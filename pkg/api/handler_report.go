package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/probeworks/diligent/pkg/services"
)

// scanReportHandler handles GET /api/v1/scans/:id/report.
func (s *Server) scanReportHandler(c *gin.Context) {
	full, err := s.reportService.GetByScan(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportResponse(full))
}

// getReportHandler handles GET /api/v1/reports/:id.
func (s *Server) getReportHandler(c *gin.Context) {
	full, err := s.reportService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportResponse(full))
}

// scanEvidenceHandler handles GET /api/v1/scans/:id/evidence.
func (s *Server) scanEvidenceHandler(c *gin.Context) {
	scanID := c.Param("id")
	if _, err := s.scanService.GetScan(c.Request.Context(), scanID); err != nil {
		writeServiceError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.reportService.EvidenceForScan(c.Request.Context(), scanID, limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, EvidenceListResponse{Evidence: items, Total: total})
}

func reportResponse(full *services.FullReport) ReportResponse {
	return ReportResponse{
		Report:    full.Report,
		Sections:  full.Sections,
		Citations: full.Citations,
		Evidence:  full.Evidence,
	}
}
