package main

import (
	"hbs/src/common"
	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func hotelBrowseHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels/search", func(ctx *gin.Context) {
			var body types.HotelSearchRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, err := parseDate(body.StartDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			end, err := parseDate(body.EndDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			results, err := common.SearchHotels(body.City, start, end, body.RoomsCount)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": results, "count": len(results)})
		}).
		GET("/hotels/:id/info", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotel, err := common.GetHotelInfo(params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			if !hotel.Active {
				abortWithError(ctx, common.ErrResourceNotFound)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotel})
		})
	return g
}

// ownedHotel loads a hotel and checks the caller owns it. All admin hotel
// routes funnel through this before touching anything.
func ownedHotel(ctx *gin.Context, hotelID uint) (*models.Hotel, error) {
	userId := ctx.GetUint("id")
	var hotel models.Hotel
	err := db.GetDb().
		Where(&models.Hotel{ID: hotelID}).
		First(&hotel).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, common.ErrResourceNotFound
		}
		return nil, err
	}
	if hotel.OwnerID != userId {
		return nil, common.ErrUnauthorized
	}
	return &hotel, nil
}

func hotelAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/admin/hotels", func(ctx *gin.Context) {
			var body types.CreateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			hotel := models.Hotel{
				Name:         body.Name,
				Slug:         slug.Make(body.Name),
				City:         body.City,
				ContactEmail: body.ContactEmail,
				ContactPhone: body.ContactPhone,
				Amenities:    body.Amenities,
				Photos:       body.Photos,
				OwnerID:      userId,
			}
			if err := db.GetDb().Create(&hotel).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": hotel})
		}).
		GET("/admin/hotels", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var hotels []models.Hotel
			err := db.GetDb().
				Where(&models.Hotel{OwnerID: userId}).
				Find(&hotels).
				Error
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotels, "count": len(hotels)})
		}).
		GET("/admin/hotels/:id", func(ctx *gin.Context) {
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
			if err := db.GetDb().Preload("Rooms").First(hotel, hotel.ID).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotel})
		}).
		PATCH("/admin/hotels/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotel, err := ownedHotel(ctx, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			updates := models.Hotel{
				Name:         body.Name,
				City:         body.City,
				ContactEmail: body.ContactEmail,
				ContactPhone: body.ContactPhone,
				Amenities:    body.Amenities,
				Photos:       body.Photos,
			}
			if body.Name != "" {
				updates.Slug = slug.Make(body.Name)
			}
			if err := db.GetDb().Model(hotel).Updates(updates).Error; err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotel})
		}).
		PATCH("/admin/hotels/:id/activate", func(ctx *gin.Context) {
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
			if hotel.Active {
				ctx.JSON(http.StatusOK, gin.H{"data": hotel})
				return
			}
			err = db.GetDb().Transaction(func(tx *gorm.DB) error {
				if err := tx.Model(hotel).UpdateColumn("active", true).Error; err != nil {
					return err
				}
				var rooms []models.Room
				if err := tx.Where(&models.Room{HotelID: hotel.ID}).Find(&rooms).Error; err != nil {
					return err
				}
				for i := range rooms {
					if err := common.InitializeRoomInventory(tx, &rooms[i]); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotel})
		}).
		DELETE("/admin/hotels/:id", func(ctx *gin.Context) {
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
			err = db.GetDb().Transaction(func(tx *gorm.DB) error {
				var rooms []models.Room
				if err := tx.Where(&models.Room{HotelID: hotel.ID}).Find(&rooms).Error; err != nil {
					return err
				}
				for _, room := range rooms {
					if err := common.DeleteRoomInventory(tx, room.ID); err != nil {
						return err
					}
				}
				if err := tx.Where(&models.Room{HotelID: hotel.ID}).Delete(&models.Room{}).Error; err != nil {
					return err
				}
				return tx.Delete(hotel).Error
			})
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/admin/hotels/:id/bookings", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			bookings, err := common.ListHotelBookings(userId, params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/admin/hotels/:id/reports", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var query types.HotelReportRequestQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, end, err := query.Range()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			report, err := common.HotelReport(userId, params.ID, start, end)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": report})
		})
	return g
}
