package routev1

import (
	apperrors "valuegate.jvcp.co/application/appErrors"
	"valuegate.jvcp.co/application/controller"
	"valuegate.jvcp.co/application/interfaces"
	"github.com/gin-gonic/gin"
)

// ValuationRouter registers the gated content. The route gate middleware has
// already run by the time these handlers execute.
func ValuationRouter(router *gin.RouterGroup, valuationController *controller.ValuationController) {
	valuationRouter := router.Group("/valuation")
	{
		valuationRouter.POST("/compute", func(ctx *gin.Context) {
			var body map[string]any
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			valuationController.Compute(&interfaces.ApplicationContext[map[string]any]{
				Ctx:  ctx,
				Body: &body,
				Keys: ctx.Keys,
			})
		})
	}
}
