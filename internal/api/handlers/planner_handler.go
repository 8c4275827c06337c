package handlers

import (
	"tripledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PlannerHandler struct {
	plannerService *service.PlannerService
	logger         *zap.Logger
}

func NewPlannerHandler(plannerService *service.PlannerService, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
		logger:         logger,
	}
}

// JuneWeather godoc
// @Summary June weather outlook for Curitiba
// @Tags planner
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.WeatherResponse
// @Router /api/v1/weather/curitiba/june [get]
func (h *PlannerHandler) JuneWeather(c *fiber.Ctx) error {
	return c.JSON(h.plannerService.JuneWeather())
}

// JunePeriodWeather godoc
// @Summary Weather outlook for June 13-18 in Curitiba
// @Tags planner
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.PeriodWeatherResponse
// @Router /api/v1/weather/curitiba/june/13-18 [get]
func (h *PlannerHandler) JunePeriodWeather(c *fiber.Ctx) error {
	return c.JSON(h.plannerService.JunePeriodWeather())
}

// TrainAvailability godoc
// @Summary Serra Verde Express availability for June 13-18
// @Tags planner
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TrainResponse
// @Router /api/v1/train/serra-verde/june/13-18 [get]
func (h *PlannerHandler) TrainAvailability(c *fiber.Ctx) error {
	return c.JSON(h.plannerService.TrainAvailability())
}

// BuildPlanner godoc
// @Summary Day-by-day trip planner
// @Description Compose climate risk, train availability and place suggestions per day
// @Tags planner
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.PlannerResponse
// @Router /api/v1/planner [get]
func (h *PlannerHandler) BuildPlanner(c *fiber.Ctx) error {
	planner, err := h.plannerService.BuildPlanner(c.Context())
	if err != nil {
		h.logger.Error("Failed to build planner", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build planner",
		})
	}
	return c.JSON(planner)
}
