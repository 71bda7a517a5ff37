package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/application/service"
	"github.com/restobill/restobill-api/internal/domain/enum"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/request"
	"github.com/restobill/restobill-api/internal/presentation/http/dto/response"
	"github.com/restobill/restobill-api/pkg/pagination"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService    *service.BillService
	receiptService *service.ReceiptService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService, receiptService *service.ReceiptService) *BillHandler {
	return &BillHandler{
		billService:    billService,
		receiptService: receiptService,
	}
}

func billItemInputs(items []request.BillItemRequest) []service.BillItemInput {
	inputs := make([]service.BillItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.BillItemInput{
			DishID:   item.DishID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return inputs
}

// List handles listing bills, newest first
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:      filter.Search,
		ServiceType: filter.ServiceType,
		DateFrom:    filter.DateFrom,
		DateTo:      filter.DateTo,
	}

	result, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Create handles finalizing a bill
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		ServiceType: enum.ServiceType(req.ServiceType),
		TableNumber: req.TableNumber,
		WaiterName:  req.WaiterName,
		Items:       billItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles retrieving a single bill
func (h *BillHandler) Get(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Preview computes totals for a draft without saving it
func (h *BillHandler) Preview(c *gin.Context) {
	var req request.PreviewBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	totals, err := h.billService.PreviewBill(c.Request.Context(), billItemInputs(req.Items))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals computed successfully", totals.Rounded())
}

// Export streams every bill as an xlsx workbook
func (h *BillHandler) Export(c *gin.Context) {
	data, err := h.billService.ExportBills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("bills-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// PDF streams the receipt PDF for a bill
func (h *BillHandler) PDF(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, filename, err := h.receiptService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Print sends a bill to the thermal printer
func (h *BillHandler) Print(c *gin.Context) {
	id, err := ParseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.receiptService.PrintBill(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			// Printer failed but the receipt was composed; return it so
			// the client can fall back to the PDF.
			response.Success(c, http.StatusAccepted, "Printer unavailable, receipt returned", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}
