package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/application/usecase"
)

// EstimateHandler handles estimate CRUD (protected). Same surface as
// quotations, separate numbering sequence, no PDF export.
type EstimateHandler struct {
	uc *usecase.EstimateUseCase
}

// NewEstimateHandler builds the handler.
func NewEstimateHandler(uc *usecase.EstimateUseCase) *EstimateHandler {
	return &EstimateHandler{uc: uc}
}

// Create godoc
// @Summary      Create an estimate
// @Tags         estimates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEstimateRequest  true  "client_id, date, items required"
// @Success      201   {object}  dto.EstimateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estimates [post]
func (h *EstimateHandler) Create(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var in dto.CreateEstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), adminID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "estimate ID"
// @Success      200  {object}  dto.EstimateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estimates/{id} [get]
func (h *EstimateHandler) GetByID(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	out, err := h.uc.GetByID(adminID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List estimates
// @Tags         estimates
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20, max 100)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.EstimateResponse
// @Router       /api/estimates [get]
func (h *EstimateHandler) List(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	out, err := h.uc.List(adminID, page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update an estimate
// @Tags         estimates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "estimate ID"
// @Param        body  body  dto.UpdateEstimateRequest  true  "fields to change"
// @Success      200   {object}  dto.EstimateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estimates/{id} [put]
func (h *EstimateHandler) Update(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var in dto.UpdateEstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(adminID, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an estimate
// @Tags         estimates
// @Security     Bearer
// @Param        id  path  string  true  "estimate ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estimates/{id} [delete]
func (h *EstimateHandler) Delete(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	if err := h.uc.Delete(adminID, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
