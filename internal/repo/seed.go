// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file seeds the scenario/question reference data used
// by the interview flow. Seeding is idempotent: it only runs against an
// empty scenarios table, so redeployments never clobber administrative edits
// such as deactivated scenarios.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/anawat34115/police-care-backend/internal/domain"
)

// Seed inserts the built-in incident scenarios and their questions when the
// scenarios table is empty. It returns without touching the database when any
// scenario row already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Scenario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range seedScenarios() {
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// seedScenarios returns the built-in data set: five incident categories with
// four yes/no questions each. Question text and the sign-language explain
// strings are Thai; video URLs point at the instructional clips bundled with
// the client.
func seedScenarios() []domain.Scenario {
	return []domain.Scenario{
		{
			Key:      "theft",
			Title:    "แจ้งเหตุลักทรัพย์",
			Icon:     "fa-mask",
			Color:    "orange",
			IsActive: true,
			Questions: []domain.Question{
				{QuestionNumber: 1, Text: "คุณเห็นหน้าคนร้ายไหม?", Explain: "ท่ามือ: ชี้ไปที่ตา แล้วทำท่ามองหา", VideoURL: "videos/theft/saw_suspect.mp4", IsActive: true},
				{QuestionNumber: 2, Text: "มีกล้องวงจรปิดไหม?", Explain: "ท่ามือ: ทำท่ากล้องวงจรด้วยนิ้วมือ", VideoURL: "videos/theft/has_cctv.mp4", IsActive: true},
				{QuestionNumber: 3, Text: "มีผู้บาดเจ็บไหม?", Explain: "ท่ามือ: ทำท่าบาดเจ็บ จับบริเวณที่เจ็บ", VideoURL: "videos/theft/is_injured.mp4", IsActive: true},
				{QuestionNumber: 4, Text: "คนร้ายใช้อาวุธไหม?", Explain: "ท่ามือ: ทำท่าถืออาวุธ หรือทำท่าขู่อีกฝ่าย", VideoURL: "videos/theft/weapon_used.mp4", IsActive: true},
			},
		},
		{
			Key:      "accident",
			Title:    "อุบัติเหตุรถชน",
			Icon:     "fa-car-burst",
			Color:    "blue",
			IsActive: true,
			Questions: []domain.Question{
				{QuestionNumber: 1, Text: "มีผู้บาดเจ็บไหม?", Explain: "ท่ามือ: ทำท่าบาดเจ็บ จับบริเวณที่เจ็บ", VideoURL: "videos/accident/has_injury.mp4", IsActive: true},
				{QuestionNumber: 2, Text: "รถเสียหายหนักไหม?", Explain: "ท่ามือ: ทำท่ารถพัง หรือทำท่าชนแรง", VideoURL: "videos/accident/vehicle_damage.mp4", IsActive: true},
				{QuestionNumber: 3, Text: "เป็นรถชนแล้วหนีไหม?", Explain: "ท่ามือ: ทำท่ารถวิ่งหนี", VideoURL: "videos/accident/hit_and_run.mp4", IsActive: true},
				{QuestionNumber: 4, Text: "ต้องการรถพยาบาลไหม?", Explain: "ท่ามือ: ทำท่าเรียกรถพยาบาล", VideoURL: "videos/accident/need_ambulance.mp4", IsActive: true},
			},
		},
		{
			Key:      "assault",
			Title:    "การทำร้ายร่างกาย",
			Icon:     "fa-user-injured",
			Color:    "red",
			IsActive: true,
			Questions: []domain.Question{
				{QuestionNumber: 1, Text: "ต้องการความช่วยเหลือทางการแพทย์ไหม?", Explain: "ท่ามือ: ทำท่าเรียกหมอ หรือจับบริเวณที่เจ็บ", VideoURL: "videos/assault/needs_medical.mp4", IsActive: true},
				{QuestionNumber: 2, Text: "มีอาวุธประกอบภัยไหม?", Explain: "ท่ามือ: ทำท่าถืออาวุธ หรือทำท่าขู่อีกฝ่าย", VideoURL: "videos/assault/weapon_involved.mp4", IsActive: true},
				{QuestionNumber: 3, Text: "มีผู้ก่อเหตุหลายคนไหม?", Explain: "ท่ามือ: ชี้นิ้วหลายๆ แล้วทำท่าทำร้าย", VideoURL: "videos/assault/multiple_attackers.mp4", IsActive: true},
				{QuestionNumber: 4, Text: "มีพยานเห็นเหตุการณ์ไหม?", Explain: "ท่ามือ: ชี้ไปรอบๆ แล้วทำท่ามองเห็น", VideoURL: "videos/assault/witness_present.mp4", IsActive: true},
			},
		},
		{
			Key:      "fire",
			Title:    "ไฟไหม้",
			Icon:     "fa-fire",
			Color:    "red",
			IsActive: true,
			Questions: []domain.Question{
				{QuestionNumber: 1, Text: "มีคนติดอยู่ในอาคารไหม?", Explain: "ท่ามือ: ทำท่าคนติดอยู่ และทำท่าไฟ", VideoURL: "videos/fire/people_trapped.mp4", IsActive: true},
				{QuestionNumber: 2, Text: "เป็นอาคารพักอาศัยไหม?", Explain: "ท่ามือ: ทำท่าบ้าน และทำท่าไฟ", VideoURL: "videos/fire/building_type.mp4", IsActive: true},
				{QuestionNumber: 3, Text: "มีเสียงระเบิดไหม?", Explain: "ท่ามือ: ทำท่าระเบิด ปิดหูและทำท่าเสียงดัง", VideoURL: "videos/fire/explosion.mp4", IsActive: true},
				{QuestionNumber: 4, Text: "ต้องการรถดับเพลิงไหม?", Explain: "ท่ามือ: ทำท่ารถดับเพลิง", VideoURL: "videos/fire/need_fire_truck.mp4", IsActive: true},
			},
		},
		{
			Key:      "missing",
			Title:    "บุคคลสูญหาย",
			Icon:     "fa-person-walking",
			Color:    "purple",
			IsActive: true,
			Questions: []domain.Question{
				{QuestionNumber: 1, Text: "เป็นเด็กสูญหายไหม?", Explain: "ท่ามือ: ทำท่าเด็ก และทำท่าหายไป", VideoURL: "videos/missing/child_missing.mp4", IsActive: true},
				{QuestionNumber: 2, Text: "มีโรคประจำตัวไหม?", Explain: "ท่ามือ: ทำท่าป่วย หรือทำท่ากินยา", VideoURL: "videos/missing/medical_condition.mp4", IsActive: true},
				{QuestionNumber: 3, Text: "เห็นครั้งสุดท้ายเมื่อเมื่อไหร่?", Explain: "ท่ามือ: ทำท่าดูนาฬิกา และทำท่ามองหา", VideoURL: "videos/missing/last_seen.mp4", IsActive: true},
				{QuestionNumber: 4, Text: "มีความต้องการพิเศษพิเศษไหม?", Explain: "ท่ามือ: ทำท่าต้องการความช่วยเหลือพิเศษ", VideoURL: "videos/missing/special_needs.mp4", IsActive: true},
			},
		},
	}
}
