package filestorage

import (
	"context"
	"fmt"
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	filesdbstorage "wfm-backend/lib/file-storage/storage"
	fileapimodels "wfm-backend/models/api/file"
	dbmodels "wfm-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	s3client "wfm-backend/s3"
)

type Provider interface {
	Upload(ctx context.Context, employeeID string, fileType dbmodels.FileType, fileName, contentType string, data []byte) (fileapimodels.FileView, error)
	Download(ctx context.Context, fileID string) (view fileapimodels.FileView, data []byte, err error)
	Exists(fileID string) (bool, error)
}

var Instance Provider

func NewHandler() {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента файлового хранилища")
	}
	Instance = impl{
		client: client,
		store:  filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	client s3client.Provider
	store  filesdbstorage.Provider
}

func (i impl) Upload(ctx context.Context, employeeID string, fileType dbmodels.FileType, fileName, contentType string, data []byte) (fileapimodels.FileView, error) {
	if len(data) == 0 {
		return fileapimodels.FileView{}, apperrors.NewValidation("получен пустой файл")
	}
	objectKey := fmt.Sprintf("%s/%s", fileType, uuid.New().String())
	err := i.client.Upload(ctx, objectKey, contentType, data)
	if err != nil {
		return fileapimodels.FileView{}, errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	rec := dbmodels.FileStorage{
		EmployeeID:  employeeID,
		FileType:    fileType,
		FileName:    fileName,
		ContentType: contentType,
		ObjectKey:   objectKey,
	}
	id, err := i.store.SaveFile(rec)
	if err != nil {
		return fileapimodels.FileView{}, errors.Wrap(err, "ошибка сохранения данных файла")
	}
	rec.ID = id
	return fileapimodels.FileConvert(rec), nil
}

func (i impl) Download(ctx context.Context, fileID string) (fileapimodels.FileView, []byte, error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return fileapimodels.FileView{}, nil, err
	}
	if rec == nil {
		return fileapimodels.FileView{}, nil, apperrors.NewNotFound("файл не найден")
	}
	data, err := i.client.Download(ctx, rec.ObjectKey)
	if err != nil {
		return fileapimodels.FileView{}, nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	return fileapimodels.FileConvert(*rec), data, nil
}

func (i impl) Exists(fileID string) (bool, error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}
