package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
)

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// clientView is the public shape of an OAuth client; the secret hash never leaves the service
type clientView struct {
	ClientID   string `json:"client_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Scopes     string `json:"scopes"`
	GrantTypes string `json:"grant_types"`
}

func newClientView(client models.OAuthClient) clientView {
	return clientView{
		ClientID:   client.ID,
		Name:       client.Name,
		Role:       client.Role,
		Scopes:     client.Scopes,
		GrantTypes: client.GrantTypes,
	}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Register a client allowed to request access tokens. The plain secret is returned only once.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body object{name=string,role=string,scopes=string} true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Role   string `json:"role" binding:"omitempty,oneof=admin user"`
		Scopes string `json:"scopes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(err.Error()))
		return
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}

	secret := uuid.New().String()
	client := &models.OAuthClient{
		ID:         uuid.New().String(),
		Secret:     secret,
		Name:       req.Name,
		Role:       req.Role,
		Scopes:     req.Scopes,
		GrantTypes: "client_credentials",
	}

	if err := cc.clientService.CreateClient(c.Request.Context(), client); err != nil {
		respondInternalError(c, err, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // Return plain secret only once
		"name":          client.Name,
		"role":          client.Role,
		"scopes":        client.Scopes,
		"grant_types":   client.GrantTypes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all registered OAuth2 clients
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} object "List of clients"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to retrieve clients")
		return
	}

	views := make([]clientView, 0, len(clients))
	for _, client := range clients {
		views = append(views, newClientView(client))
	}
	c.JSON(http.StatusOK, views)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Revoke a registered OAuth2 client
// @Tags OAuth2 Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse("Client not found"))
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to delete client")
		return
	}

	c.Status(http.StatusNoContent)
}
