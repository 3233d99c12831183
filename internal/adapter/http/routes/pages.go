package routes

import (
	"marcenaria_site/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHome      = "/"
	PathGallery   = "/galeria"
	PathEstimator = "/orcamento"
	PathContactUs = "/contato"
)

func addPageRoutes(router *gin.Engine, pageHandler *handlers.PageHandler) {
	router.GET(PathHome, pageHandler.Home)

	gallery := router.Group(PathGallery)
	{
		gallery.GET("", pageHandler.Gallery)
		gallery.GET("/:index", pageHandler.GalleryImage)
	}

	router.GET(PathEstimator, pageHandler.Estimator)
	router.POST(PathEstimator, pageHandler.EstimatorStep)

	router.GET(PathContactUs, pageHandler.Contact)
	router.POST(PathContactUs, pageHandler.ContactSubmit)
}
