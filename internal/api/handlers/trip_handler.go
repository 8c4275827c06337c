package handlers

import (
	"errors"

	"tripledger/internal/dto"
	"tripledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TripHandler struct {
	tripService      *service.TripService
	resumoService    *service.ResumoService
	emergencyService *service.EmergencyFundService
	logger           *zap.Logger
}

func NewTripHandler(
	tripService *service.TripService,
	resumoService *service.ResumoService,
	emergencyService *service.EmergencyFundService,
	logger *zap.Logger,
) *TripHandler {
	return &TripHandler{
		tripService:      tripService,
		resumoService:    resumoService,
		emergencyService: emergencyService,
		logger:           logger,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip with an optional planned budget and emergency fund
// @Tags trips
// @Accept json
// @Produce json
// @Param request body dto.CreateTripRequest true "Trip to create"
// @Security Bearer
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/trips [post]
func (h *TripHandler) CreateTrip(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	trip, err := h.tripService.Create(c.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrNegativeFund):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrInvalidReference):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to create trip", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create trip",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTripResponse(trip, nil))
}

// ListTrips godoc
// @Summary List trips
// @Description List the caller's trips with their expenses
// @Tags trips
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.TripResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/trips [get]
func (h *TripHandler) ListTrips(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	trips, err := h.tripService.ListWithExpenses(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list trips", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list trips",
		})
	}

	out := make([]dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, dto.NewTripResponse(t.Trip, t.Expenses))
	}

	return c.JSON(out)
}

// GetResumo godoc
// @Summary Financial summary of a trip
// @Description Compute the trip's resumo: totals, fund availability, alert level and operation history
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} dto.ResumoResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/resumo [get]
func (h *TripHandler) GetResumo(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	tripID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid trip ID",
		})
	}

	resumo, err := h.resumoService.GetResumo(c.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Trip not found",
			})
		}
		h.logger.Error("Failed to build resumo", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build resumo",
		})
	}

	return c.JSON(dto.NewResumoResponse(resumo))
}

// UseEmergencyFund godoc
// @Summary Draw down emergency reserves
// @Description Atomically cover the trip's budget overage from the trip reserve, then the global reserve
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} dto.FundUsageResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/emergency-fund [post]
func (h *TripHandler) UseEmergencyFund(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	tripID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid trip ID",
		})
	}

	result, err := h.emergencyService.Use(c.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Trip not found",
			})
		}
		h.logger.Error("Failed to use emergency fund", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to use emergency fund",
		})
	}

	resp := dto.FundUsageResponse{
		Status:         string(result.Status),
		UsedFromTrip:   result.UsedFromTrip,
		UsedFromGlobal: result.UsedFromGlobal,
		Uncovered:      result.Uncovered,
	}
	switch result.Status {
	case service.FundUsageNoOp:
		resp.Message = "Spending is within budget; nothing to cover."
	case service.FundUsageInsufficient:
		resp.Message = "Emergency reserves cannot fully cover the overage; no balance was changed."
	case service.FundUsageApplied:
		resp.Message = "Emergency fund draw applied."
		op := dto.NewOperationResponse(result.Operation)
		resp.Operation = &op
	}

	return c.JSON(resp)
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
