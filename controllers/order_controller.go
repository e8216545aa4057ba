package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"covertrip/models"
	"covertrip/services/wizard"
	"covertrip/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderController turns a completed wizard session into a payable order.
// Premiums are carried through from the insurer catalog as-is; nothing is
// computed here.
type OrderController struct {
	db    *gorm.DB
	store wizard.Store
}

func NewOrderController(db *gorm.DB, store wizard.Store) *OrderController {
	return &OrderController{db: db, store: store}
}

type createOrderRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	TotalPremium string `json:"total_premium" binding:"required"`
}

// CreateOrder persists the merged order for all travelers. Requires every
// traveler to have finished all three wizard stages.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}
	userIDInt, ok := userID.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user id"})
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request")
		return
	}

	s, err := wizard.LoadSession(c.Request.Context(), oc.store, req.SessionID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "session not found or expired")
		return
	}
	if !s.Ready() {
		respondError(c, http.StatusBadRequest, "not all travelers have completed the wizard")
		return
	}

	payload, err := json.Marshal(s.Review())
	if err != nil {
		utils.LogError(err, "marshal order payload")
		respondError(c, http.StatusInternalServerError, "failed to build order")
		return
	}

	order := models.TravelOrder{
		UserID:        uint(userIDInt),
		OrderID:       uuid.New().String(),
		SessionID:     s.ID,
		Status:        "pending",
		TravelerCount: len(s.Roster.Slots),
		TotalPremium:  req.TotalPremium,
		Payload:       datatypes.JSON(payload),
	}
	if err := oc.db.Create(&order).Error; err != nil {
		utils.LogError(err, "create travel order")
		respondError(c, http.StatusInternalServerError, "failed to create order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  toOrderResponse(order),
		"success": true,
	})
}

// GetUserOrders lists the user's orders with pagination.
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}
	userIDInt, _ := userID.(int)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var total int64
	query := oc.db.Model(&models.TravelOrder{}).Where("user_id = ?", uint(userIDInt))
	if err := query.Count(&total).Error; err != nil {
		utils.LogError(err, "count travel orders")
		respondError(c, http.StatusInternalServerError, "failed to list orders")
		return
	}

	var orders []models.TravelOrder
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&orders).Error; err != nil {
		utils.LogError(err, "list travel orders")
		respondError(c, http.StatusInternalServerError, "failed to list orders")
		return
	}

	responses := make([]models.TravelOrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"result": models.TravelOrderListResponse{
			Orders:     responses,
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
		"success": true,
	})
}

func toOrderResponse(order models.TravelOrder) models.TravelOrderResponse {
	return models.TravelOrderResponse{
		ID:            order.ID,
		OrderID:       order.OrderID,
		Status:        order.Status,
		TravelerCount: order.TravelerCount,
		TotalPremium:  order.TotalPremium,
		Payload:       order.Payload,
		CreatedAt:     order.CreatedAt,
	}
}
