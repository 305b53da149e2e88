package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
	"catalog-admin/internal/service"
	"catalog-admin/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth     service.AuthService
	products service.ProductService
	images   storage.Service
	logger   *logrus.Logger
}

func NewHandler(auth service.AuthService, products service.ProductService, images storage.Service, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:     auth,
		products: products,
		images:   images,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.getHome)
	router.POST("/login", h.postLogin)
	router.GET("/logout", h.getLogout)
	router.GET("/products", h.listProducts)
	router.GET("/products/:id", h.getProduct)

	dashboard := router.Group("/dashboard", h.requireAuth())
	{
		dashboard.GET("", h.getDashboard)
		dashboard.GET("/new", h.getNewProduct)
		dashboard.POST("/new", h.createProduct)
		dashboard.GET("/new/success", h.getCreateSuccess)
		dashboard.GET("/edit/:id", h.getEditProduct)
		dashboard.POST("/edit/:id", h.updateProduct)
		dashboard.GET("/edited/success", h.getEditSuccess)
		dashboard.POST("/delete/:id", h.deleteProduct)
		dashboard.GET("/delete/success", h.getDeleteSuccess)
	}
}

func (h *Handler) getHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"title": "Inicio de sesión"})
}

func (h *Handler) postLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	result, err := h.auth.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "invalid_credentials.html", gin.H{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to log in"})
		return
	}

	c.SetCookie(TokenCookieName, result.Token, int(result.ExpiresIn.Seconds()), "/", "", false, true)
	c.HTML(http.StatusOK, "login.html", gin.H{"user": result.DisplayName})
}

// getLogout clears the token cookie regardless of validity. A missing
// token means the visitor is already logged out, which is not an error.
func (h *Handler) getLogout(c *gin.Context) {
	data := gin.H{}
	if token, err := c.Cookie(TokenCookieName); err == nil && token != "" {
		if user, err := h.auth.Identify(c.Request.Context(), token); err == nil {
			data["user"] = user.DisplayName
		}
		c.SetCookie(TokenCookieName, "", -1, "/", "", false, true)
	}
	c.HTML(http.StatusOK, "logout.html", data)
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load products"})
		return
	}
	c.HTML(http.StatusOK, "products.html", gin.H{"items": products})
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load product"})
		return
	}
	c.HTML(http.StatusOK, "product.html", gin.H{"item": product})
}

// getDashboard renders a distinct view for an empty catalog; empty is a
// content shape, not an error.
func (h *Handler) getDashboard(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load products"})
		return
	}

	data := gin.H{}
	if user := identityFrom(c); user != nil {
		data["user"] = user.DisplayName
	}
	if len(products) == 0 {
		c.HTML(http.StatusOK, "empty_dashboard.html", data)
		return
	}
	data["items"] = products
	c.HTML(http.StatusOK, "dashboard.html", data)
}

func (h *Handler) getNewProduct(c *gin.Context) {
	c.HTML(http.StatusOK, "new_product.html", gin.H{"categories": domain.Categories, "sizes": domain.Sizes})
}

func (h *Handler) createProduct(c *gin.Context) {
	imageRef, err := h.storeImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to store image"})
		return
	}

	input := productInputFromForm(c, imageRef)
	if _, err := h.products.Create(c.Request.Context(), input); err != nil {
		h.discardImage(c, imageRef)
		if service.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create product"})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard/new/success")
}

func (h *Handler) getEditProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load product"})
		return
	}
	c.HTML(http.StatusOK, "edit_product.html", gin.H{
		"item":       product,
		"categories": domain.Categories,
		"sizes":      domain.Sizes,
	})
}

func (h *Handler) updateProduct(c *gin.Context) {
	id := c.Param("id")

	previous, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load product"})
		return
	}

	imageRef, err := h.storeImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to store image"})
		return
	}

	input := productInputFromForm(c, imageRef)
	if _, err := h.products.Update(c.Request.Context(), id, input); err != nil {
		h.discardImage(c, imageRef)
		if service.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to edit product"})
		return
	}

	if previous.ImageRef != "" && previous.ImageRef != input.ImageRef {
		h.discardImage(c, previous.ImageRef)
	}

	c.Redirect(http.StatusFound, "/dashboard/edited/success")
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"message": "failed to delete product"})
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{"message": "product not found"})
			return
		}
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"message": "failed to delete product"})
		return
	}

	if product != nil {
		h.discardImage(c, product.ImageRef)
	}

	c.Redirect(http.StatusFound, "/dashboard/delete/success")
}

func (h *Handler) getCreateSuccess(c *gin.Context) {
	c.HTML(http.StatusOK, "create_success.html", gin.H{})
}

func (h *Handler) getEditSuccess(c *gin.Context) {
	c.HTML(http.StatusOK, "edited_success.html", gin.H{})
}

func (h *Handler) getDeleteSuccess(c *gin.Context) {
	c.HTML(http.StatusOK, "delete_success.html", gin.H{})
}

// storeImage saves the uploaded "imagen" file, if any, and returns its
// storage reference. No file yields an empty reference so validation
// can report the missing image in order.
func (h *Handler) storeImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("imagen")
	if err != nil {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return h.images.Save(c.Request.Context(), file.Filename, src)
}

// discardImage removes a stored image best-effort; a failed cleanup is
// logged and never fails the request.
func (h *Handler) discardImage(c *gin.Context, ref string) {
	if ref == "" {
		return
	}
	if err := h.images.Remove(c.Request.Context(), ref); err != nil {
		h.logger.Warnf("remove image %s: %v", ref, err)
	}
}

func productInputFromForm(c *gin.Context, imageRef string) domain.ProductInput {
	price, _ := strconv.ParseFloat(strings.TrimSpace(c.PostForm("precio")), 64)
	return domain.ProductInput{
		Name:        c.PostForm("nombre"),
		Description: c.PostForm("descripcion"),
		ImageRef:    imageRef,
		Category:    c.PostForm("categoria"),
		Size:        c.PostForm("talla"),
		Price:       price,
	}
}
