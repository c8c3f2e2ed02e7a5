package background

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"

	"github.com/lifeline-inc/dispatch-api/external/onesignal"
	"github.com/lifeline-inc/dispatch-api/utils"
)

// OneSignalLanguageCode is a mapping between onesignal language code and
// i18n language code
var OneSignalLanguageCode = map[string]string{
	"en": "en",
	"es": "es",
}

// NotifyHospitalByMessage pushes a localized message to the terminal
// devices of one hospital, matched by its hospital_id device tag.
func (b *Background) NotifyHospitalByMessage(hospitalID, messageID string, data map[string]interface{}) error {
	headings := map[string]string{}
	contents := map[string]string{}
	for osLang, lang := range OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)
		if title, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: messageID + ".title",
		}); err == nil {
			headings[osLang] = title
		}
		if body, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: messageID + ".body",
		}); err == nil {
			contents[osLang] = body
		}
	}

	req := &onesignal.NotificationRequest{
		AppID:    viper.GetString("onesignal.appid"),
		Headings: headings,
		Contents: contents,
		Filters: []map[string]string{
			{
				"field":    "tag",
				"key":      "hospital_id",
				"relation": "=",
				"value":    hospitalID,
			},
		},
		Data:           data,
		LocalChannelID: "dispatch_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}
