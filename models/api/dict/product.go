package dictapimodels

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type ProductData struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	IsActive *bool  `json:"is_active"` // учитывается только при обновлении
}

func (r ProductData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название материала")
	}
	return nil
}

type ProductView struct {
	ID string `json:"id"`
	ProductData
	IsActive bool `json:"is_active"`
}

func ProductConvert(rec dbmodels.Product) ProductView {
	return ProductView{
		ID: rec.ID,
		ProductData: ProductData{
			Name: rec.Name,
			Unit: rec.Unit,
		},
		IsActive: rec.IsActive,
	}
}
