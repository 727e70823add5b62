package v1

import (
	"net/http"

	"github.com/capstone-portal/dto"
	"github.com/capstone-portal/services"
	"github.com/gin-gonic/gin"
)

// RequestController handles continuation request API endpoints
type RequestController struct {
	requestService   *services.RequestService
	resolveGroupName func(userID string) string
}

// NewRequestController creates a request controller backed by the database
func NewRequestController() *RequestController {
	return &RequestController{
		requestService:   services.NewRequestService(),
		resolveGroupName: lookupGroupName,
	}
}

// NewRequestControllerWith creates a request controller with explicit dependencies
func NewRequestControllerWith(service *services.RequestService, resolveGroupName func(string) string) *RequestController {
	return &RequestController{
		requestService:   service,
		resolveGroupName: resolveGroupName,
	}
}

func lookupGroupName(userID string) string {
	user, err := services.GetUser(userID)
	if err != nil {
		return ""
	}
	return user.GroupName
}

// RegisterRoutes registers continuation request routes
func (rc *RequestController) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/requests")
	{
		requests.GET("", rc.ListSentRequests)
		requests.GET("/:id", rc.GetRequest)
		requests.PUT("/:id", rc.EditMessage)
		requests.DELETE("/:id/cancel", rc.CancelRequest)
	}

	projects := router.Group("/projects")
	{
		projects.POST("/:id/request", rc.SubmitRequest)
		projects.GET("/:id/requests", rc.ListIncomingRequests)
		projects.POST("/:id/request/:requestId/approve", rc.Approve)
		projects.DELETE("/:id/requests/:requestId/reject", rc.Reject)
	}
}

// ListSentRequests returns all requests the calling group has submitted
func (rc *RequestController) ListSentRequests(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	requests, err := rc.requestService.ListSentRequests(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]dto.RequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, dto.NewRequestResponse(request, rc.requestService.CanEditOrCancel(request, userID)))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetRequest returns one request, visible to its requester or the project owner
func (rc *RequestController) GetRequest(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	request, err := rc.requestService.GetRequest(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.NewRequestResponse(request, rc.requestService.CanEditOrCancel(request, userID)),
	})
}

// SubmitRequest creates a continuation request against an open project
func (rc *RequestController) SubmitRequest(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	var payload dto.SubmitRequestPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	request, err := rc.requestService.SubmitRequest(userID, rc.resolveGroupName(userID), ctx.Param("id"), payload.Message)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   dto.NewRequestResponse(request, true),
	})
}

// EditMessage updates the message of a pending request
func (rc *RequestController) EditMessage(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	var payload dto.EditRequestPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	request, err := rc.requestService.EditMessage(ctx.Param("id"), userID, payload.Message)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.NewRequestResponse(request, true),
	})
}

// CancelRequest withdraws a pending request
func (rc *RequestController) CancelRequest(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	if err := rc.requestService.CancelRequest(ctx.Param("id"), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Request cancelled",
	})
}

// ListIncomingRequests returns all requests against one of the caller's projects
func (rc *RequestController) ListIncomingRequests(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	requests, err := rc.requestService.ListIncomingRequests(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]dto.RequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, dto.NewRequestResponse(request, false))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// Approve grants a pending request and discloses the proposal link
func (rc *RequestController) Approve(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	request, err := rc.requestService.Approve(ctx.Param("requestId"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.NewRequestResponse(request, false),
	})
}

// Reject declines a pending request; the record is removed after the response
func (rc *RequestController) Reject(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		return
	}

	var payload dto.RejectRequestPayload
	// The body is optional for rejections without a reason
	_ = ctx.ShouldBindJSON(&payload)

	request, err := rc.requestService.Reject(ctx.Param("requestId"), userID, payload.Reason)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.NewRequestResponse(request, false),
	})
}

// currentUserID reads the authenticated user from the context, writing the
// unauthorized response itself when absent
func currentUserID(ctx *gin.Context) string {
	userID, exists := ctx.Get("userId")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return ""
	}
	return userID.(string)
}
