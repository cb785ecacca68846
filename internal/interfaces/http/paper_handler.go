package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/application/export"
	"github.com/sajiloprint/press-api/internal/application/usecase"
)

// PaperHandler handles paper CRUD and ledger exports (protected).
type PaperHandler struct {
	uc       *usecase.PaperUseCase
	exportUC *export.UseCase
}

// NewPaperHandler builds the handler.
func NewPaperHandler(uc *usecase.PaperUseCase, exportUC *export.UseCase) *PaperHandler {
	return &PaperHandler{uc: uc, exportUC: exportUC}
}

// Create godoc
// @Summary      Create a paper
// @Tags         papers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaperRequest  true  "type, original_stock required"
// @Success      201   {object}  dto.PaperResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/papers [post]
func (h *PaperHandler) Create(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var in dto.CreatePaperRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(adminID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get a paper with its current balance
// @Tags         papers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "paper ID"
// @Success      200  {object}  dto.PaperResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/papers/{id} [get]
func (h *PaperHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      List papers with current balances
// @Tags         papers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20, max 100)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.PaperResponse
// @Router       /api/papers [get]
func (h *PaperHandler) List(c *fiber.Ctx) error {
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
// @Summary      Update a paper
// @Description  original_stock is rejected with 409 once the paper has ledger
//
//	entries; correct the ledger instead.
//
// @Tags         papers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "paper ID"
// @Param        body  body  dto.UpdatePaperRequest  true  "fields to change"
// @Success      200   {object}  dto.PaperResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/papers/{id} [put]
func (h *PaperHandler) Update(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var in dto.UpdatePaperRequest
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
// @Summary      Delete a paper
// @Description  Rejected with 409 while the paper still has ledger entries.
// @Tags         papers
// @Security     Bearer
// @Param        id  path  string  true  "paper ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/papers/{id} [delete]
func (h *PaperHandler) Delete(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	if err := h.uc.Delete(adminID, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LedgerPDF godoc
// @Summary      Download the paper's stock ledger as PDF
// @Tags         papers
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "paper ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/papers/{id}/ledger.pdf [get]
func (h *PaperHandler) LedgerPDF(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	data, filename, err := h.exportUC.LedgerPDF(c.Context(), adminID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// LedgerXLSX godoc
// @Summary      Download the paper's stock ledger as XLSX
// @Tags         papers
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  string  true  "paper ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/papers/{id}/ledger.xlsx [get]
func (h *PaperHandler) LedgerXLSX(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	data, filename, err := h.exportUC.LedgerXLSX(c.Context(), adminID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
