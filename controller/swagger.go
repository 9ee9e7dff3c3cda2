package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// SwaggerDoc serves the generated OpenAPI document.
func (ctrl *Controller) SwaggerDoc(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		ctrl.Log.Errorf("Failed to read swagger doc: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "swagger doc unavailable"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
