package initializers

import (
	"context"
	"wfm-backend/config"
	"wfm-backend/fiberlog"
	approvalhandler "wfm-backend/lib/approval"
	authhandler "wfm-backend/lib/auth"
	productprovider "wfm-backend/lib/dicts/product"
	siteprovider "wfm-backend/lib/dicts/site"
	employeehandler "wfm-backend/lib/employee"
	xlsexport "wfm-backend/lib/export/xls"
	filestorage "wfm-backend/lib/file-storage"
	notificationhandler "wfm-backend/lib/notification"
	"wfm-backend/lib/rbac"
	reportshandler "wfm-backend/lib/reports"
	restrictedperiodprovider "wfm-backend/lib/restricted-period"
	shifthandler "wfm-backend/lib/shift"
	taskhandler "wfm-backend/lib/task"
	voicehandler "wfm-backend/lib/voice"
	worksessionhandler "wfm-backend/lib/work-session"
	staleworker "wfm-backend/lib/work-session/stale-worker"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	rbac.NewHandler()
	notificationhandler.NewHandler()
	voicehandler.NewHandler()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	authhandler.NewHandler()
	employeehandler.NewHandler()
	siteprovider.NewHandler()
	productprovider.NewHandler()
	restrictedperiodprovider.NewHandler()
	worksessionhandler.NewHandler()
	approvalhandler.NewHandler()
	shifthandler.NewHandler()
	taskhandler.NewHandler()
	reportshandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача закрытия забытых смен
	staleworker.StartWorker(ctx)
}
