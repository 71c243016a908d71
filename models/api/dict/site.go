package dictapimodels

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type SiteData struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	GeoLat        *float64 `json:"geo_lat"`
	GeoLon        *float64 `json:"geo_lon"`
	GeoRadiusM    *int     `json:"geo_radius_m"`
	PhotoRequired bool     `json:"photo_required"`
	IsActive      *bool    `json:"is_active"` // учитывается только при обновлении
}

func (r SiteData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название объекта")
	}
	geoSet := 0
	if r.GeoLat != nil {
		geoSet++
	}
	if r.GeoLon != nil {
		geoSet++
	}
	if r.GeoRadiusM != nil {
		geoSet++
	}
	if geoSet != 0 && geoSet != 3 {
		return errors.New("геозона задаётся координатами центра и радиусом одновременно")
	}
	if r.GeoRadiusM != nil && *r.GeoRadiusM <= 0 {
		return errors.New("радиус геозоны должен быть положительным")
	}
	return nil
}

type SiteView struct {
	ID string `json:"id"`
	SiteData
	IsActive bool `json:"is_active"`
}

func SiteConvert(rec dbmodels.Site) SiteView {
	return SiteView{
		ID: rec.ID,
		SiteData: SiteData{
			Name:          rec.Name,
			Address:       rec.Address,
			GeoLat:        rec.GeoLat,
			GeoLon:        rec.GeoLon,
			GeoRadiusM:    rec.GeoRadiusM,
			PhotoRequired: rec.PhotoRequired,
		},
		IsActive: rec.IsActive,
	}
}
