// Command gen writes type-safe GORM query builders for the persistence models.
package main

import (
	"khitma/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.PersonalKhitmaModel{},
		model.PersonalKhitmaDailyModel{},
		model.DeviceRegistrationModel{},
		model.DailyActivityModel{},
		model.VerseModel{},
		model.VerseAssignmentModel{},
		model.AppNotificationModel{},
		model.NotificationPreferenceModel{},
		model.PushEventModel{},
		model.JobLockModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
