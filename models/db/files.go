package dbmodels

type FileType string

const (
	CheckInPhoto FileType = "CHECKIN_PHOTO"
	TaskPhoto    FileType = "TASK_PHOTO"
	VoiceNote    FileType = "VOICE_NOTE"
)

func (t FileType) IsKnown() bool {
	switch t {
	case CheckInPhoto, TaskPhoto, VoiceNote:
		return true
	}
	return false
}

type FileStorage struct {
	BaseModel
	EmployeeID  string   `gorm:"type:varchar(36);index"`
	FileType    FileType `gorm:"type:varchar(50)"`
	FileName    string   `gorm:"type:varchar(255)"`
	ContentType string   `gorm:"type:varchar(100)"`
	ObjectKey   string   `gorm:"type:varchar(255)"` // ключ объекта в S3
}
