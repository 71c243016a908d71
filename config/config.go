package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMB int    `default:"50" env:"APP_BODY_LIMIT_MB"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"wfm" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"AUTH_JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Admin struct {
		// учётка администратора, создаётся при первом старте
		Email    string `default:"admin@localhost" env:"ADMIN_EMAIL"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"wfm-files" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	YaGPT struct {
		// перевод голосовых заметок, при пустом токене работает заглушка
		IAMToken  string `default:"" env:"YAGPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YAGPT_CATALOG_ID"`
	}
	Session struct {
		// смены старше горизонта закрываются фоновой задачей
		StaleAfterHours    int `default:"16" env:"SESSION_STALE_AFTER_HOURS"`
		WorkerPeriodInMin  int `default:"15" env:"SESSION_WORKER_PERIOD_IN_MIN"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
