package initializers

import (
	"context"
	s3client "wfm-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Panic("Ошибка подключения к файловому хранилищу")
	}
	err = client.MakeBucket(context.Background())
	if err != nil {
		log.WithError(err).Panic("Ошибка создания бакета в файловом хранилище")
	}
	log.Info("S3 хранилище подключено")
}
