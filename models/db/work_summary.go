package dbmodels

type WorkSummary struct {
	BaseModel
	SessionID     string `gorm:"type:varchar(36);uniqueIndex"`
	Notes         string
	VoiceNote     string // исходный текст голосовой заметки
	VoiceLang     string `gorm:"type:varchar(10)"`
	Translation   string
	ProductUsages []WorkSummaryProduct `gorm:"foreignKey:SummaryID"`
}

type WorkSummaryProduct struct {
	BaseModel
	SummaryID string `gorm:"type:varchar(36);index"`
	ProductID string `gorm:"type:varchar(36)"`
	Product   *Product
	Quantity  float64
	Notes     string
}
