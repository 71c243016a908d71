package voice

import (
	"fmt"
	"wfm-backend/config"
	yagptclient "wfm-backend/lib/voice/yagpt-client"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Transcribe(audio []byte, lang string) (text string, err error)
	Translate(text, from, to string) (translated string, err error)
}

var Instance Provider

func NewHandler() {
	var client yagptclient.Provider
	if config.Conf.YaGPT.IAMToken != "" {
		client = yagptclient.NewClient(config.Conf.YaGPT.IAMToken, config.Conf.YaGPT.CatalogID)
	} else {
		log.Warn("YandexGPT не настроен, перевод заметок отключён")
	}
	Instance = impl{client: client}
}

type impl struct {
	client yagptclient.Provider
}

// Распознавание речи не подключено, возвращаем заглушку
func (i impl) Transcribe(audio []byte, lang string) (string, error) {
	return "", nil
}

func (i impl) Translate(text, from, to string) (string, error) {
	if i.client == nil {
		return text, nil
	}
	promt := fmt.Sprintf("Переведи текст с языка %s на язык %s. В ответе верни только перевод.", from, to)
	translated, err := i.client.GenerateByPromtAndText(promt, text)
	if err != nil {
		log.WithError(err).Error("Ошибка перевода текста")
		return text, nil
	}
	return translated, nil
}
