package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-entregadores/internal/config"
	"github.com/prefeitura-rio/app-entregadores/internal/services"
)

// GetUploadedFile godoc
// @Summary Obter anexo armazenado
// @Description Serve um anexo previamente armazenado pelo cadastro, referenciado pelo nome retornado na criação do perfil.
// @Tags entregador
// @Produce octet-stream
// @Param filename path string true "Referência do anexo"
// @Success 200 {file} binary "Conteúdo do anexo"
// @Failure 404 {object} ErrorResponse "Anexo não encontrado"
// @Router /uploads/{filename} [get]
func GetUploadedFile(c *gin.Context) {
	// Re-sanitize so a crafted path can never escape the upload directory
	name := services.SanitizeFilename(c.Param("filename"))
	if name == "" {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Attachment not found"})
		return
	}

	path := filepath.Join(config.AppConfig.UploadDir, name)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Attachment not found"})
		return
	}

	c.File(path)
}
