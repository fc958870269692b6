package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/job-aggregator/internal/config"
	"github.com/nalin-pixel/job-aggregator/internal/database"
	"github.com/nalin-pixel/job-aggregator/internal/dtos"
)

const maxListedTables = 10

// DiagnosticHandler reports database reachability. DB is nil when no
// database is configured or the connection failed at startup.
type DiagnosticHandler struct {
	DB     database.Inspector
	Config config.Config
}

// NewDiagnosticHandler accepts a nil db.
func NewDiagnosticHandler(db database.Inspector, cfg config.Config) *DiagnosticHandler {
	return &DiagnosticHandler{DB: db, Config: cfg}
}

// Test is the GET /test endpoint.
//
// @Summary  Database diagnostic
// @Tags     health
// @Produce  json
// @Success  200 {object} dtos.DiagnosticResponse
// @Router   /test [get]
func (h *DiagnosticHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnose())
}

func (h *DiagnosticHandler) diagnose() dtos.DiagnosticResponse {
	resp := dtos.DiagnosticResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.DB != nil {
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"

		tables, err := h.DB.Tables()
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(tables) > maxListedTables {
				tables = tables[:maxListedTables]
			}
			resp.Collections = tables
			resp.Database = "✅ Connected & Working"
		}
	}

	resp.DatabaseURL = setMarker(h.Config.DatabaseURL)
	resp.DatabaseName = setMarker(h.Config.DatabaseName)
	return resp
}

func setMarker(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
