package config

import (
	"log"
	"os"
	"time"
)

const defaultBusinessTimezone = "America/Sao_Paulo"

var businessLocation *time.Location

// LoadBusinessTimezone resolves the fixed zone used to bucket sales into
// calendar days. Sales belong to the day of their created_at converted into
// this zone, never the client's locale.
func LoadBusinessTimezone() {
	name := os.Getenv("BUSINESS_TIMEZONE")
	if name == "" {
		name = defaultBusinessTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatal("Invalid BUSINESS_TIMEZONE: ", err)
	}

	businessLocation = loc
}

func BusinessLocation() *time.Location {
	if businessLocation == nil {
		LoadBusinessTimezone()
	}
	return businessLocation
}
