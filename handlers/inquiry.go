package handlers

import (
	"net/http"
	"strings"

	"travel_wonders_go/config"
	"travel_wonders_go/middleware"
	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
)

// InquiryRequest is the body of a trip inquiry
type InquiryRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	TripTitle string `json:"tripTitle"`
}

// CreateInquiryHandler forwards a visitor inquiry to a specialist
// POST /api/specialists/:slug/inquiry
func CreateInquiryHandler(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, email and message are required")
	}
	if !strings.Contains(req.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid email address")
	}

	loc := middleware.GetLocale(c)

	specialist, err := Content.SpecialistDetail(c.Request().Context(), c.Param("slug"), loc)
	if err != nil {
		return respondContentError(c, err)
	}

	inquiry := services.TripInquiry{
		SpecialistName:  specialist.Name,
		SpecialistEmail: specialistContactEmail(c, specialist.Slug),
		VisitorName:     req.Name,
		VisitorEmail:    req.Email,
		Message:         req.Message,
		TripTitle:       req.TripTitle,
	}
	if inquiry.SpecialistEmail == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Specialist has no contact email")
	}

	email, err := services.BuildInquiryEmail(inquiry)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build inquiry email")
	}

	if cfg, ok := c.Get("config").(*config.Config); ok {
		services.SendEmailAsync(cfg, email)
	}

	return c.JSON(http.StatusAccepted, dataEnvelope{Data: map[string]string{"status": "queued"}})
}

// specialistContactEmail reads the contact address from the raw row.
// The resolved view model deliberately omits it.
func specialistContactEmail(c echo.Context, slug string) string {
	if Items == nil {
		return ""
	}

	query := services.ItemQuery{Collection: "specialists", Limit: 1}.
		Where("slug", services.OpEq, slug)

	rows, err := Items.FetchItems(c.Request().Context(), query)
	if err != nil || len(rows) == 0 {
		return ""
	}

	email, _ := services.AsString(rows[0]["contact_email"])
	return email
}
