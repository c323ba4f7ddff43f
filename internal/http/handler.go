package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleet-telemetry-service/internal/http/middleware"
	"fleet-telemetry-service/internal/model"
	"fleet-telemetry-service/internal/service"
)

type Handler struct {
	auth      *service.AuthService
	telemetry *service.TelemetryService
	pageSize  int
	log       zerolog.Logger
}

func NewHandler(authSvc *service.AuthService, telemetrySvc *service.TelemetryService, pageSize int, log zerolog.Logger) *Handler {
	return &Handler{auth: authSvc, telemetry: telemetrySvc, pageSize: pageSize, log: log}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	r.GET("/health/", h.health)
	r.POST("/auth/login/", h.login)
	r.POST("/auth/register/", h.register)
	r.POST("/auth/token/refresh/", h.refreshToken)

	protected := r.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/auth/logout/", h.logout)
	protected.GET("/auth/me/", h.me)
	protected.GET("/users/list/", h.listUsers)
	protected.GET("/dashboard-stats/", h.dashboardStats)
	protected.GET("/vehicle-selection/", h.vehicleSelection)
	protected.GET("/vehicle-analysis/", h.vehicleAnalysis)
	protected.GET("/trails/", h.trails)
	protected.GET("/reports/", h.reports)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, errorResponse("Invalid Credentials"))
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (h *Handler) logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Refresh token is required."))
		return
	}

	if err := h.auth.Logout(c.Request.Context(), req.Refresh); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, errorResponse("Token is invalid or expired."))
			return
		}
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) refreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Refresh token is required."))
		return
	}

	access, err := h.auth.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, errorResponse("Token is invalid or expired."))
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *Handler) me(c *gin.Context) {
	claims, ok := middleware.MustClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing credentials"))
		return
	}

	user, err := h.auth.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) listUsers(c *gin.Context) {
	claims, ok := middleware.MustClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing credentials"))
		return
	}

	users, err := h.auth.ListUsers(c.Request.Context(), claims.Role)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) dashboardStats(c *gin.Context) {
	payload, err := h.telemetry.DashboardStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *Handler) vehicleSelection(c *gin.Context) {
	payload, err := h.telemetry.VehicleSelection(c.Request.Context(), c.Query("fleet_type"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("No vehicle summary data found."))
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

// discoveryRequested reports whether the request asks for the filter
// dimensions rather than data: an explicit fetch_filters marker, or no
// query parameters at all.
func discoveryRequested(c *gin.Context) bool {
	query := c.Request.URL.Query()
	if query.Has("fetch_filters") {
		return true
	}
	return len(query) == 0
}

func (h *Handler) vehicleAnalysis(c *gin.Context) {
	if discoveryRequested(c) {
		filters, err := h.telemetry.AnalysisFilters(c.Request.Context())
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"filters": filters})
		return
	}

	regStr := c.Query("registration_id")
	dateStr := c.Query("date")
	if regStr == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, errorResponse("registration_id and date parameters are required."))
		return
	}

	registrationID, err := strconv.ParseUint(regStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid registration_id"))
		return
	}
	date, err := time.Parse(model.DateFormat, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid date, expected YYYY-MM-DD"))
		return
	}

	charts, err := h.telemetry.AnalysisCharts(c.Request.Context(), uint(registrationID), date)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("No chart data found for the specified registration and date."))
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"charts": charts})
}

func (h *Handler) trails(c *gin.Context) {
	if discoveryRequested(c) {
		filters, err := h.telemetry.TrailFilters(c.Request.Context())
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"filters": filters})
		return
	}

	vehicleStr := c.Query("vehicle_id")
	dateStr := c.Query("date")
	if vehicleStr == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, errorResponse("vehicle_id and date parameters are required."))
		return
	}

	vehicleID, err := strconv.ParseUint(vehicleStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
	date, err := time.Parse(model.DateFormat, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid date, expected YYYY-MM-DD"))
		return
	}

	payload, err := h.telemetry.Trail(c.Request.Context(), uint(vehicleID), date)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("No trail data found for the specified vehicle and date."))
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

func (h *Handler) reports(c *gin.Context) {
	if c.Request.URL.Query().Has("fetch_filters") {
		options, err := h.telemetry.ReportFilterOptions(c.Request.Context())
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, options)
		return
	}

	filter := parseReportFilter(c)
	params := ParsePageParams(c, h.pageSize)

	rows, total, err := h.telemetry.Reports(c.Request.Context(), filter, params.Offset(), params.PageSize)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if params.Page > TotalPages(total, params.PageSize) {
		c.JSON(http.StatusNotFound, errorResponse("Invalid page."))
		return
	}

	c.JSON(http.StatusOK, BuildEnvelope(c, params, total, rows))
}

// parseReportFilter collects the optional report predicates. The date
// range applies only when both ends are present and well formed;
// malformed dates drop the range instead of failing the request.
func parseReportFilter(c *gin.Context) model.ReportFilter {
	filter := model.ReportFilter{
		ReportType:     c.Query("report_type"),
		VehicleType:    c.Query("vehicle_type"),
		RegistrationNo: c.Query("registration_no"),
	}

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr != "" && endStr != "" {
		start, startErr := time.Parse(model.DateFormat, startStr)
		end, endErr := time.Parse(model.DateFormat, endStr)
		if startErr == nil && endErr == nil {
			filter.StartDate = &start
			filter.EndDate = &end
		}
	}

	return filter
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
