package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-blog/internal/service"
)

// ContactHandler accepts contact-form submissions from visitors; no
// session is required.
type ContactHandler struct {
	Contact *service.ContactService
}

func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{Contact: contact}
}

// contactReq mirrors the contact form field names.
type contactReq struct {
	Name        string `form:"name" json:"name"`
	Email       string `form:"email" json:"email"`
	PhoneNumber string `form:"phonenumber" json:"phone_number"`
	Message     string `form:"message" json:"message"`
}

// ContactForm handles GET /contact.
func (h *ContactHandler) ContactForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"view": service.ViewContact})
}

// Submit handles POST /contact: store the message and bounce back to
// the home page.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	v, err := h.Contact.Submit(ctx, req.Name, req.Email, req.PhoneNumber, req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not send message"})
	}
	return redirectTo(c, v)
}
