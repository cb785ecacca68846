package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sajiloprint/press-api/internal/application/dto"
	appledger "github.com/sajiloprint/press-api/internal/application/ledger"
)

// StockHandler handles the paper stock ledger (protected). Every mutation runs
// the recomputation cascade inside one transaction.
type StockHandler struct {
	uc *appledger.StockEntryUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(uc *appledger.StockEntryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Record a stock entry (issue or addition)
// @Description  Inserts the entry at its (date, created_at) position and
//
//	recomputes every later running balance. Balances floor at
//	zero; floored rows come back with clamped=true.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockEntryRequest  true  "paper_id, date, entry_type required"
// @Success      201   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/paper-stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var in dto.CreateStockEntryRequest
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
// @Summary      Get a stock entry
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "entry ID"
// @Success      200  {object}  dto.StockEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paper-stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
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

// ListByPaper godoc
// @Summary      List a paper's ledger (most recent date first)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        paper_id  query  string  true  "paper ID"
// @Success      200  {array}  dto.StockEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paper-stock [get]
func (h *StockHandler) ListByPaper(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	paperID := c.Query("paper_id")
	if paperID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paper_id is required"})
	}
	out, err := h.uc.ListByPaper(adminID, paperID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edit a stock entry
// @Description  A date change moves the entry within the ledger; balances are
//
//	recomputed from the earlier of the old and new positions.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "entry ID"
// @Param        body  body  dto.UpdateStockEntryRequest  true  "fields to change"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/paper-stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	var in dto.UpdateStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), adminID, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a stock entry
// @Description  Later balances reseed from the deleted entry's predecessor
//
//	(or the paper's original stock when it was first).
//
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "entry ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paper-stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	adminID := requireTenant(c)
	if adminID == "" {
		return nil
	}
	if err := h.uc.Delete(c.Context(), adminID, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
