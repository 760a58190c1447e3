package routev1

import (
	apperrors "valuegate.jvcp.co/application/appErrors"
	"valuegate.jvcp.co/application/controller"
	"valuegate.jvcp.co/application/controller/dto"
	"valuegate.jvcp.co/application/interfaces"
	"github.com/gin-gonic/gin"
)

func AuthRouter(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		authRouter.POST("/link/request", func(ctx *gin.Context) {
			var body dto.RequestMagicLinkDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			authController.RequestMagicLink(&interfaces.ApplicationContext[dto.RequestMagicLinkDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		authRouter.GET("/link/consume", func(ctx *gin.Context) {
			authController.ConsumeMagicLink(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
			}, ctx.Query("token"))
		})

		authRouter.POST("/otp/request", func(ctx *gin.Context) {
			var body dto.RequestOtpDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			authController.RequestOtp(&interfaces.ApplicationContext[dto.RequestOtpDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		authRouter.POST("/otp/consume", func(ctx *gin.Context) {
			var body dto.ConsumeOtpDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			authController.ConsumeOtp(&interfaces.ApplicationContext[dto.ConsumeOtpDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})
	}
}
