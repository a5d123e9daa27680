package main

import (
	"hbs/src/common"
	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ownedGuest loads a guest profile and checks it belongs to the caller.
func ownedGuest(ctx *gin.Context, guestID uint) (*models.Guest, error) {
	userId := ctx.GetUint("id")
	var guest models.Guest
	err := db.GetDb().
		Where(&models.Guest{ID: guestID}).
		First(&guest).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, common.ErrResourceNotFound
		}
		return nil, err
	}
	if guest.UserID != userId {
		return nil, common.ErrUnauthorized
	}
	return &guest, nil
}

func guestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/users/guests", func(ctx *gin.Context) {
			var body types.CreateGuestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			guest := models.Guest{
				UserID: userId,
				Name:   body.Name,
				Gender: body.Gender,
				Age:    body.Age,
			}
			if err := db.GetDb().Create(&guest).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": guest})
		}).
		GET("/users/guests", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var guests []models.Guest
			err := db.GetDb().
				Where(&models.Guest{UserID: userId}).
				Find(&guests).
				Error
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guests, "count": len(guests)})
		}).
		PATCH("/users/guests/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateGuestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			guest, err := ownedGuest(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			updates := models.Guest{
				Name:   body.Name,
				Gender: body.Gender,
				Age:    body.Age,
			}
			if err := db.GetDb().Model(guest).Updates(updates).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guest})
		}).
		DELETE("/users/guests/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			guest, err := ownedGuest(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			if err := db.GetDb().Delete(guest).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
