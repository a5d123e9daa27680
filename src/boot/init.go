package boot

import (
	"hbs/src/common"
	"hbs/src/db"
	"hbs/src/lib"
	"hbs/src/models"
	"log"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Guest{},
		&models.Inventory{},
		&models.HotelMinPrice{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the in-process scheduler and registers the
// expired-booking reaper. Expiry stays correct without it; the reaper
// just frees held inventory early.
func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	jid, err := lib.CreateCronJob(common.ExpireStaleBookings, 1*time.Minute)
	if err != nil {
		log.Printf("Error registering expiry job: %s\n", err.Error())
		return
	}
	log.Printf("Registered booking expiry job: %s\n", *jid)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}
