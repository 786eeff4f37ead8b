package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/probeworks/diligent/pkg/pipeline"
)

// createScanHandler handles POST /api/v1/scans.
//
// The default response is 202 with the created scan. With ?stream=sse
// the response becomes the scan's progress stream: the subscription is
// opened before the scan is created so no events are missed, and the
// stream runs until the terminal complete or error event.
func (s *Server) createScanHandler(c *gin.Context) {
	var req CreateScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.Query("stream") == "sse" && s.connManager != nil {
		s.createScanStreaming(c, req)
		return
	}

	scan, err := s.scanService.CreateScan(c.Request.Context(), req.toInput())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, scanResponse(scan))
}

func (s *Server) createScanStreaming(c *gin.Context, req CreateScanRequest) {
	// The scan id is assigned here so the subscription exists before the
	// orchestrate job can emit anything.
	input := req.toInput()
	input.ScanID = uuid.New().String()

	stream, err := s.connManager.OpenScanStream(input.ScanID)
	if err != nil {
		s.logger.Error("Failed to open scan stream", "scan_id", input.ScanID, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "progress stream unavailable"})
		return
	}
	defer stream.Close()

	scan, err := s.scanService.CreateScan(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Writer.Header().Set("X-Scan-ID", scan.ID)
	if err := stream.Serve(c.Request.Context(), c.Writer); err != nil {
		s.logger.Info("Scan stream closed", "scan_id", scan.ID, "reason", err)
	}
}

// getScanHandler handles GET /api/v1/scans/:id.
func (s *Server) getScanHandler(c *gin.Context) {
	scanID := c.Param("id")
	progress, err := s.scanService.Status(c.Request.Context(), scanID, pipeline.TotalStages)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// scanStagesHandler handles GET /api/v1/scans/:id/stages.
func (s *Server) scanStagesHandler(c *gin.Context) {
	scanID := c.Param("id")
	if _, err := s.scanService.GetScan(c.Request.Context(), scanID); err != nil {
		writeServiceError(c, err)
		return
	}

	results, err := s.scanService.StageResults(c.Request.Context(), scanID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]StageResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, stageResultResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"scan_id": scanID, "stages": out})
}

// listScansHandler handles GET /api/v1/scans.
func (s *Server) listScansHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}

	scans, total, err := s.scanService.ListScans(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := ScanListResponse{Scans: make([]ScanResponse, 0, len(scans)), Total: total}
	for _, scan := range scans {
		resp.Scans = append(resp.Scans, scanResponse(scan))
	}
	c.JSON(http.StatusOK, resp)
}

// cancelScanHandler handles POST /api/v1/scans/:id/cancel.
func (s *Server) cancelScanHandler(c *gin.Context) {
	scanID := c.Param("id")

	err := s.scanService.CancelScan(c.Request.Context(), scanID)

	// Also cancel on this pod directly so a locally running scan reacts
	// without waiting for the next heartbeat poll.
	if s.workerPool != nil {
		s.workerPool.CancelScan(scanID)
	}

	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CancelResponse{
		ScanID:  scanID,
		Message: "Scan cancellation requested",
	})
}
