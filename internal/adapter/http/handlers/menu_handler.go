package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tino-ryan/restaurant-app/internal/adapter/http/dto/request"
	"github.com/tino-ryan/restaurant-app/internal/adapter/http/dto/response"
	"github.com/tino-ryan/restaurant-app/internal/usecase"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
	"github.com/tino-ryan/restaurant-app/pkg"
)

// MenuHandler handles the public menu and staff menu management.

type MenuHandler struct {
	usecase usecase.IMenuUseCase
}

func NewMenuHandler(uc usecase.IMenuUseCase) *MenuHandler {
	return &MenuHandler{usecase: uc}
}

// GetMenu returns the active menu items for customers.
//
//	@Summary		Get the menu
//	@Description	Lists active menu items
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		response.MenuItemResponse
//	@Failure		503	{object}	pkg.HTTPError
//	@Router			/v1/menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	log.Printf("[menu][handler] get start")

	items, err := h.usecase.ActiveMenu(c.Request.Context())
	if err != nil {
		log.Printf("[menu][handler] get failed err=%v", err)
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[menu][handler] get success count=%d", len(items))

	c.JSON(http.StatusOK, response.FromMenuItems(items))
}

// GetFullMenu returns all menu items including archived ones.
//
//	@Summary		Get the full menu
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		response.MenuItemResponse
//	@Failure		503	{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/menu [get]
func (h *MenuHandler) GetFullMenu(c *gin.Context) {
	log.Printf("[menu][handler] get-full start")

	items, err := h.usecase.FullMenu(c.Request.Context())
	if err != nil {
		log.Printf("[menu][handler] get-full failed err=%v", err)
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[menu][handler] get-full success count=%d", len(items))

	c.JSON(http.StatusOK, response.FromMenuItems(items))
}

// AddMenuItem creates a menu item from a multipart form with an optional image.
//
//	@Summary		Add a menu item
//	@Description	Creates a menu item; an attached image is uploaded and linked
//	@Tags			menu
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Item name"
//	@Param			price		formData	number	true	"Item price"
//	@Param			category	formData	string	true	"Item category"
//	@Param			description	formData	string	false	"Item description"
//	@Param			allergens	formData	string	false	"Allergen note"
//	@Param			image		formData	file	false	"Item image"
//	@Success		201			{object}	response.MenuItemResponse
//	@Failure		400			{object}	pkg.HTTPError
//	@Failure		503			{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/menu [post]
func (h *MenuHandler) AddMenuItem(c *gin.Context) {
	name := c.PostForm("name")
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		log.Printf("[menu][handler] add invalid price value=%q err=%v", c.PostForm("price"), err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Price must be a number", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[menu][handler] add start name=%s", name)

	input := usecase.NewMenuItemInput{
		Name:        name,
		Price:       price,
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Allergens:   c.PostForm("allergens"),
	}
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("[menu][handler] add image open failed name=%s err=%v", name, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Image could not be read", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		defer file.Close()
		input.Image = file
		input.ImageName = fileHeader.Filename
	}

	created, err := h.usecase.AddItem(c.Request.Context(), input)
	if err != nil {
		log.Printf("[menu][handler] add failed name=%s err=%v", name, err)
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[menu][handler] add success item_id=%s name=%s", created.ID, created.Name)

	c.JSON(http.StatusCreated, response.FromMenuItem(created))
}

// EditMenuItem applies a partial update to a menu item.
//
//	@Summary		Edit a menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Item id"
//	@Param			item	body		request.MenuItemUpdateRequest	true	"Fields to change"
//	@Success		200		{object}	response.MenuItemResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Failure		503		{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/menu/{id} [patch]
func (h *MenuHandler) EditMenuItem(c *gin.Context) {
	itemID := c.Param("id")
	var req request.MenuItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[menu][handler] edit invalid body item_id=%s err=%v", itemID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[menu][handler] edit start item_id=%s", itemID)

	updated, err := h.usecase.EditItem(c.Request.Context(), itemID, req.ToUpdate())
	if err != nil {
		log.Printf("[menu][handler] edit failed item_id=%s err=%v", itemID, err)
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[menu][handler] edit success item_id=%s", updated.ID)

	c.JSON(http.StatusOK, response.FromMenuItem(updated))
}

// ArchiveMenuItem hides a menu item from the customer menu.
//
//	@Summary		Archive a menu item
//	@Tags			menu
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	response.MenuItemResponse
//	@Failure		404	{object}	pkg.HTTPError
//	@Failure		503	{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/menu/{id}/archive [patch]
func (h *MenuHandler) ArchiveMenuItem(c *gin.Context) {
	itemID := c.Param("id")
	log.Printf("[menu][handler] archive start item_id=%s", itemID)

	updated, err := h.usecase.ArchiveItem(c.Request.Context(), itemID)
	if err != nil {
		log.Printf("[menu][handler] archive failed item_id=%s err=%v", itemID, err)
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[menu][handler] archive success item_id=%s", updated.ID)

	c.JSON(http.StatusOK, response.FromMenuItem(updated))
}

// RestoreMenuItem returns an archived item to the customer menu.
//
//	@Summary		Restore a menu item
//	@Tags			menu
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	response.MenuItemResponse
//	@Failure		404	{object}	pkg.HTTPError
//	@Failure		503	{object}	pkg.HTTPError
//	@Security		BearerAuth
//	@Router			/v1/staff/menu/{id}/restore [patch]
func (h *MenuHandler) RestoreMenuItem(c *gin.Context) {
	itemID := c.Param("id")
	log.Printf("[menu][handler] restore start item_id=%s", itemID)

	updated, err := h.usecase.RestoreItem(c.Request.Context(), itemID)
	if err != nil {
		log.Printf("[menu][handler] restore failed item_id=%s err=%v", itemID, err)
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[menu][handler] restore success item_id=%s", updated.ID)

	c.JSON(http.StatusOK, response.FromMenuItem(updated))
}

func mapMenuError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMenuItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUploaderNotEnabled):
		return pkg.NewDomainErrorSimple("UPLOADS_NOT_ENABLED", "Image uploads are not configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Document store unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
