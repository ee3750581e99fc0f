package handler

import (
	"net/http"

	"event-insights-service/api"
	"event-insights-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// MobileEventsHandler обрабатывает проверку событий мобильных клиентов.
type MobileEventsHandler struct {
	*BaseHandler
	mobileUseCase domain.MobileAppEventsUseCase
}

// NewMobileEventsHandler создает новый экземпляр MobileEventsHandler.
func NewMobileEventsHandler(mobileUseCase domain.MobileAppEventsUseCase, logger *logrus.Logger) *MobileEventsHandler {
	return &MobileEventsHandler{
		BaseHandler:   NewBaseHandler(logger),
		mobileUseCase: mobileUseCase,
	}
}

// GetOrganizationHasMobileAppEvents отвечает первым найденным событием или null.
func (h *MobileEventsHandler) GetOrganizationHasMobileAppEvents(c echo.Context, organization string, params api.GetOrganizationHasMobileAppEventsParams) error {
	var userAgents []string
	if params.UserAgents != nil {
		userAgents = *params.UserAgents
	}

	logEntry := h.logRequest(c, "check_mobile_app_events").WithFields(logrus.Fields{
		"organization": organization,
		"user_agents":  userAgents,
	})

	events, err := h.mobileUseCase.CheckHasMobileAppEvents(c.Request().Context(), organization, userAgents)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to check mobile app events")
	}

	logEntry.WithField("found", events != nil).Info("Mobile app events checked")
	return c.JSON(http.StatusOK, toAPIMobileAppEvents(events))
}
