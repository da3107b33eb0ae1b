package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"finease-server/internal/dto"
	"finease-server/internal/errors"
	"finease-server/internal/reports"
	"finease-server/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetOverview returns the dashboard summary for the caller
// @Summary Report overview
// @Description Aggregate the caller's full collection into dashboard figures
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.OverviewResponse "Summary figures"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "REPORT_001 - Transaction data unavailable"
// @Router /reports/overview [get]
func (h *ReportHandler) GetOverview(c echo.Context) error {
	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.reportService.Overview(ownerEmail)
	if err != nil {
		return SendError(c, errors.ReportDataUnavailable)
	}

	return c.JSON(http.StatusOK, dto.NewOverviewResponse(summary))
}

// GetMonthlyExpenses returns the fixed twelve-bucket expense series
// @Summary Monthly expense buckets
// @Description Expense totals bucketed into the twelve calendar months
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MonthlyExpensesResponse "Twelve ordered buckets"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "REPORT_001 - Transaction data unavailable"
// @Router /reports/monthly-expenses [get]
func (h *ReportHandler) GetMonthlyExpenses(c echo.Context) error {
	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	buckets, err := h.reportService.MonthlyExpenses(ownerEmail)
	if err != nil {
		return SendError(c, errors.ReportDataUnavailable)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlyExpensesResponse(buckets))
}

// GetFilteredReport returns records narrowed by month and category criteria
// @Summary Filtered report
// @Description Narrow the caller's collection by month (0-11) and exact category, with a breakdown and summary of the filtered set
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param month query int false "Calendar month index, 0 (January) to 11 (December)"
// @Param category query string false "Exact category name"
// @Success 200 {object} dto.FilteredReportResponse "Filtered view"
// @Failure 400 {object} errors.ErrorResponse "REPORT_002 - Invalid filter"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "REPORT_001 - Transaction data unavailable"
// @Router /reports [get]
func (h *ReportHandler) GetFilteredReport(c echo.Context) error {
	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := parseReportFilters(c)
	if err != nil {
		return SendError(c, errors.ReportInvalidFilter, errors.WithDetails(err.Error()))
	}

	report, err := h.reportService.FilteredReport(ownerEmail, filters)
	if err != nil {
		return SendError(c, errors.ReportDataUnavailable)
	}

	return c.JSON(http.StatusOK, dto.FilteredReportResponse{
		Transactions: report.Transactions,
		Breakdown:    dto.NewCategoryBreakdown(report.Breakdown),
		Summary:      dto.NewOverviewResponse(report.Summary),
		Filters: dto.AppliedFilters{
			Month:    filters.Month,
			Category: filters.Category,
		},
	})
}

// GetCategoryTotal returns the caller's lifetime total for one category
// @Summary Category total
// @Description Lifetime sum of the caller's transactions in one category, independent of any active filters
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param category query string true "Exact category name"
// @Success 200 {object} dto.CategoryTotalResponse "Lifetime total"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing category"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "REPORT_001 - Transaction data unavailable"
// @Router /category-total [get]
func (h *ReportHandler) GetCategoryTotal(c echo.Context) error {
	ownerEmail, err := getOwnerEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	category := c.QueryParam("category")
	if category == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category query parameter is required"))
	}

	total, err := h.reportService.CategoryTotal(ownerEmail, category)
	if err != nil {
		return SendError(c, errors.ReportDataUnavailable)
	}

	return c.JSON(http.StatusOK, dto.CategoryTotalResponse{
		Category: category,
		Total:    total.StringFixed(2),
	})
}

// parseReportFilters parses the optional month and category query parameters.
// The month parameter keeps the 0-11 indexing the original clients send.
func parseReportFilters(c echo.Context) (reports.Filters, error) {
	filters := reports.Filters{
		Category: c.QueryParam("category"),
	}

	if monthStr := c.QueryParam("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return filters, errInvalidMonth
		}
		if month < 0 || month > 11 {
			return filters, errInvalidMonth
		}
		filters.Month = &month
	}

	return filters, nil
}

var errInvalidMonth = stderrors.New("month must be an integer between 0 and 11")
