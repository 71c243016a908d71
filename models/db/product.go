package dbmodels

type Product struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	Unit     string `gorm:"type:varchar(50)"`
	IsActive bool
}
