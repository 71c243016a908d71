package dbmodels

type Site struct {
	BaseModel
	Name    string `gorm:"type:varchar(255)"`
	Address string `gorm:"type:varchar(500)"`
	// геозона объекта, задаётся опционально
	GeoLat        *float64
	GeoLon        *float64
	GeoRadiusM    *int
	PhotoRequired bool // требуется фото при отметке на объекте
	IsActive      bool
}

func (s Site) HasGeofence() bool {
	return s.GeoLat != nil && s.GeoLon != nil && s.GeoRadiusM != nil && *s.GeoRadiusM > 0
}
