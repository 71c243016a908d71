package fileapimodels

import (
	dbmodels "wfm-backend/models/db"
)

type FileView struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	FileType    string `json:"file_type"`
	ContentType string `json:"content_type"`
}

func FileConvert(rec dbmodels.FileStorage) FileView {
	return FileView{
		ID:          rec.ID,
		FileName:    rec.FileName,
		FileType:    string(rec.FileType),
		ContentType: rec.ContentType,
	}
}
