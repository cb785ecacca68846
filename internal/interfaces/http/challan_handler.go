package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/application/export"
	"github.com/sajiloprint/press-api/internal/application/usecase"
)

// ChallanHandler handles delivery challan CRUD and PDF export (protected).
type ChallanHandler struct {
	uc       *usecase.ChallanUseCase
	exportUC *export.UseCase
}

// NewChallanHandler builds the handler.
func NewChallanHandler(uc *usecase.ChallanUseCase, exportUC *export.UseCase) *ChallanHandler {
	return &ChallanHandler{uc: uc, exportUC: exportUC}
}

// Create godoc
// @Summary      Create a delivery challan
// @Description  Assigns the next CHN number from the tenant's counter and
//
//	snapshots the client and job identification.
//
// @Tags         challans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChallanRequest  true  "client_id, date, items required"
// @Success      201   {object}  dto.ChallanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/challans [post]
func (h *ChallanHandler) Create(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var in dto.CreateChallanRequest
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
// @Summary      Get a challan
// @Tags         challans
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "challan ID"
// @Success      200  {object}  dto.ChallanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/challans/{id} [get]
func (h *ChallanHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      List challans
// @Tags         challans
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20, max 100)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.ChallanResponse
// @Router       /api/challans [get]
func (h *ChallanHandler) List(c *fiber.Ctx) error {
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
// @Summary      Update a challan
// @Tags         challans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "challan ID"
// @Param        body  body  dto.UpdateChallanRequest  true  "fields to change"
// @Success      200   {object}  dto.ChallanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/challans/{id} [put]
func (h *ChallanHandler) Update(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var in dto.UpdateChallanRequest
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
// @Summary      Delete a challan
// @Tags         challans
// @Security     Bearer
// @Param        id  path  string  true  "challan ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/challans/{id} [delete]
func (h *ChallanHandler) Delete(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	if err := h.uc.Delete(adminID, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Download a challan as PDF (with verification QR)
// @Tags         challans
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "challan ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/challans/{id}/pdf [get]
func (h *ChallanHandler) PDF(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	data, filename, err := h.exportUC.ChallanPDF(c.Context(), adminID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
