package model

import "time"

// Turf represents a bookable sports ground managed by an admin.
// Each turf belongs to exactly one admin user and carries a base
// price that seeds its 24-slot template.  This struct corresponds
// to a row in the `turfs` table.
//
// Fields:
//  ID          - primary key identifier.
//  AdminID     - user ID of the managing admin.
//  Name        - display name of the turf.
//  City        - city used for browse and availability search.
//  Address     - street address shown to users.
//  Description - optional free-form description.
//  BasePrice   - default hourly price applied when slots are seeded.
//  IsAvailable - admin-controlled visibility switch for the whole turf.
//  CreatedAt   - timestamp when the turf was created.
//  UpdatedAt   - timestamp of last update.
type Turf struct {
	ID          uint64    // turfs.id
	AdminID     uint64    // turfs.admin_id
	Name        string    // turfs.name
	City        string    // turfs.city
	Address     string    // turfs.address
	Description *string   // turfs.description (nullable)
	BasePrice   int64     // turfs.base_price
	IsAvailable bool      // turfs.is_available
	CreatedAt   time.Time // turfs.created_at
	UpdatedAt   time.Time // turfs.updated_at
}

// TurfImage is one gallery image registered for a turf.  Images are
// stored as URLs; the binary content lives on an external CDN.
//
// Fields:
//  ID        - primary key identifier.
//  TurfID    - turf the image belongs to.
//  URL       - absolute image URL.
//  CreatedAt - timestamp when the image was registered.
type TurfImage struct {
	ID        uint64    // turf_images.id
	TurfID    uint64    // turf_images.turf_id
	URL       string    // turf_images.url
	CreatedAt time.Time // turf_images.created_at
}
