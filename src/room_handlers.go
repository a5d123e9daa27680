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

func roomAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/admin/hotels/:id/rooms", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateRoomRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotel, err := ownedHotel(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			room := models.Room{
				HotelID:    hotel.ID,
				Type:       body.Type,
				BasePrice:  body.BasePrice,
				TotalCount: body.TotalCount,
				Capacity:   body.Capacity,
				Photos:     body.Photos,
				Amenities:  body.Amenities,
			}
			err = db.GetDb().Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&room).Error; err != nil {
					return err
				}
				// Rooms added to an inactive hotel get their ledger rows
				// on activation instead.
				if hotel.Active {
					return common.InitializeRoomInventory(tx, &room)
				}
				return nil
			})
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": room})
		}).
		GET("/admin/hotels/:id/rooms", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotel, err := ownedHotel(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			var rooms []models.Room
			if err := db.GetDb().Where(&models.Room{HotelID: hotel.ID}).Find(&rooms).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rooms, "count": len(rooms)})
		}).
		GET("/admin/hotels/:id/rooms/:roomId", func(ctx *gin.Context) {
			var params types.RoomRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotel, err := ownedHotel(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			var room models.Room
			err = db.GetDb().
				Where(&models.Room{ID: params.RoomID, HotelID: hotel.ID}).
				First(&room).
				Error
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": room})
		}).
		DELETE("/admin/hotels/:id/rooms/:roomId", func(ctx *gin.Context) {
			var params types.RoomRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotel, err := ownedHotel(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			var room models.Room
			err = db.GetDb().
				Where(&models.Room{ID: params.RoomID, HotelID: hotel.ID}).
				First(&room).
				Error
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			err = db.GetDb().Transaction(func(tx *gorm.DB) error {
				if err := common.DeleteRoomInventory(tx, room.ID); err != nil {
					return err
				}
				return tx.Delete(&room).Error
			})
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
