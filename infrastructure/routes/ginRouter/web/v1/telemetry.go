package routev1

import (
	apperrors "valuegate.jvcp.co/application/appErrors"
	"valuegate.jvcp.co/application/controller"
	"valuegate.jvcp.co/application/controller/dto"
	"valuegate.jvcp.co/application/interfaces"
	"github.com/gin-gonic/gin"
)

func TelemetryRouter(router *gin.RouterGroup, telemetryController *controller.TelemetryController) {
	logRouter := router.Group("/log")
	{
		logRouter.POST("/access", func(ctx *gin.Context) {
			var body dto.LogAccessDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			telemetryController.LogAccess(&interfaces.ApplicationContext[dto.LogAccessDTO]{
				Ctx:       ctx,
				Body:      &body,
				ClientIP:  ctx.ClientIP(),
				UserAgent: ctx.Request.UserAgent(),
			})
		})

		logRouter.POST("/valuation", func(ctx *gin.Context) {
			var body dto.LogValuationDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			telemetryController.LogValuation(&interfaces.ApplicationContext[dto.LogValuationDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})
	}
}
