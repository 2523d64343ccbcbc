package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Flight{}, "Crew", &FlightCrew{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&User{},
		&Airport{},
		&Route{},
		&AirplaneType{},
		&Airplane{},
		&Crew{},
		&Flight{},
		&Order{},
		&Ticket{},
	)
}
