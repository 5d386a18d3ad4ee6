package api

import (
	"errors"
	"net/http"

	reqdto "library-clean-service/internal/handler/dto/request"
	resdto "library-clean-service/internal/handler/dto/response"
	"library-clean-service/internal/handler/httperr"
	"library-clean-service/internal/usecase/commands"
	"library-clean-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary Add book
// @Description Add a new book to the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.AddBookRequest true "Add book request"
// @Success 201 {object} resdto.AddBookResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /books [post]
func (h *CatalogHandler) AddBook(c *gin.Context) {
	var req reqdto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.AddBook(c.Request.Context(), req.Title, req.Author, req.ISBN, req.TotalCopies)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateISBN):
			httperr.AbortWithError(c, http.StatusConflict, err, "A book with this ISBN already exists", nil)
		case errors.Is(err, commands.ErrDatabaseOperationFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		default:
			// Domain validation failures carry their own message.
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAddBookResult(result))
}

// @Summary List books
// @Description List every book in the catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.BookResponse
// @Failure 500 {object} map[string]string
// @Router /books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	views, err := h.q.ListBooks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookList(views))
}

// @Summary Search books
// @Description Search the catalog by title, author or ISBN
// @Tags catalog
// @Produce json
// @Param q query string true "Search term"
// @Param field query string false "Search field (title, author, isbn; default title)"
// @Success 200 {array} resdto.BookResponse
// @Failure 500 {object} map[string]string
// @Router /books/search [get]
func (h *CatalogHandler) SearchBooks(c *gin.Context) {
	term := c.Query("q")
	field := c.DefaultQuery("field", queries.SearchFieldTitle)

	views, err := h.q.SearchBooks(c.Request.Context(), term, field)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookList(views))
}
