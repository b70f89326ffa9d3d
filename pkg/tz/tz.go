package tz

import (
	"log"
	"time"
)

// Load returns the named location, or UTC when the name is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ tz: load %s: %v, using UTC", name, err)
		return time.UTC
	}
	return loc
}
