package main

import (
	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/users/profile", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var user models.User
			err := db.GetDb().
				Where(&models.User{ID: userId}).
				First(&user).
				Error
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		PATCH("/users/profile", func(ctx *gin.Context) {
			var body types.UpdateProfileRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			var user models.User
			err := db.GetDb().
				Where(&models.User{ID: userId}).
				First(&user).
				Error
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			updates := models.User{
				Name:   body.Name,
				Gender: body.Gender,
			}
			if body.DateOfBirth != "" {
				dob, err := parseDate(body.DateOfBirth)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				updates.DateOfBirth = &dob
			}
			if err := db.GetDb().Model(&user).Updates(updates).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		})
	return g
}
