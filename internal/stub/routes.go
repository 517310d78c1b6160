package stub

import (
	"github.com/gin-gonic/gin"

	"sportmart.client/internal/domain/entities"
)

// Router builds the stub API with the full route table the client engine
// talks to.
func Router(store *Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware())

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", store.Login)
			auth.POST("/google", store.LoginGoogle)
			auth.POST("/facebook", store.LoginFacebook)
		}

		locations := v1.Group("/locations")
		{
			locations.GET("/provinces", store.ListProvinces)
			locations.GET("/provinces/:id/districts", store.ListDistricts)
			locations.GET("/districts/:id/wards", store.ListWards)
		}

		v1.GET("/products/suggest", store.Suggest)

		authed := v1.Group("")
		authed.Use(AuthMiddleware(store.JWT))
		{
			authed.POST("/upload", store.UploadImage)

			addresses := authed.Group("/addresses")
			{
				addresses.GET("", store.ListAddresses)
				addresses.POST("", store.CreateAddress)
				addresses.GET("/:id", store.GetAddress)
				addresses.PUT("/:id", store.UpdateAddress)
				addresses.DELETE("/:id", store.DeleteAddress)
				addresses.PATCH("/:id/primary", store.SetPrimaryAddress)
			}

			seller := authed.Group("/seller/registration")
			{
				seller.POST("", store.SubmitRegistration)
				seller.PUT("", store.UpdateRejectedRegistration)
				seller.GET("", store.RegistrationStatus)
				seller.DELETE("", store.CancelRejectedRegistration)
				seller.GET("/check-shop-name", store.CheckShopName)
				seller.GET("/check-national-id", store.CheckNationalID)
			}

			admin := authed.Group("/admin/registrations")
			admin.Use(RequireRole(entities.RoleAdmin))
			{
				admin.GET("", store.ListRegistrations)
				admin.GET("/:id", store.RegistrationDetail)
				admin.POST("/:id/approve", store.ApproveRegistration)
				admin.POST("/:id/reject", store.RejectRegistration)
			}
		}
	}

	return r
}
