// Package seed は初回起動時の基準データと明示的な初期化処理を提供する。
//
// 基準データは観測可能な振る舞いの一部であり、値はアプリケーションの
// 契約として固定されている。投入は対応するキーが未永続化の場合のみ行う。
package seed

import (
	"time"

	"github.com/hitoshi/boulderlog/internal/model"
)

// 固定アカウントの識別子。登録で生成されるIDとは独立した安定値。
const (
	AdminUserID      = "admin"
	AdminPassword    = "admin"
	AdminFixedID     = "admin-user-01"
	SecondUserID     = "ClimberJane"
	SecondPassword   = "password123"
	SecondFixedID    = "climber-jane-02"
	secondPassesLeft = 7
)

// AdminUser は固定管理者アカウントの正準値を返す。
// 会員権は期限付きで、翌年1月1日に失効する。
func AdminUser(now time.Time) model.User {
	expiry := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())
	return model.User{
		ID:                   AdminFixedID,
		UserID:               AdminUserID,
		Password:             AdminPassword,
		IsAdmin:              true,
		MembershipType:       model.MembershipTimeBased,
		MembershipExpiryDate: &expiry,
	}
}

// SecondDummyUser は固定の非管理者アカウントの正準値を返す。
// 会員権は回数券で、残り7回。
func SecondDummyUser() model.User {
	passes := secondPassesLeft
	return model.User{
		ID:             SecondFixedID,
		UserID:         SecondUserID,
		Password:       SecondPassword,
		IsAdmin:        false,
		MembershipType: model.MembershipPassBased,
		PassesLeft:     &passes,
	}
}

// Sets は初回投入する4つのセットを返す。4番目のみアクティブ。
func Sets() []model.BoulderSet {
	return []model.BoulderSet{
		{
			ID:          "set1_july_w1_main",
			Name:        "July Week 1 - Main Wall",
			Description: "Fresh routes on the main bouldering wall, set on July 1st.",
			IsActive:    false,
		},
		{
			ID:          "set2_july_w2_slab",
			Name:        "July Week 2 - Slab Zone",
			Description: "Technical slab problems, set on July 8th.",
			IsActive:    false,
		},
		{
			ID:          "set3_july_w3_cave",
			Name:        "July Week 3 - The Cave",
			Description: "Steep and powerful routes in the cave section, set on July 15th.",
			IsActive:    false,
		},
		{
			ID:          "set4_july_w4_overhang",
			Name:        "July Week 4 - The Overhang",
			Description: "Challenging overhang routes, set on July 22nd.",
			IsActive:    true,
		},
	}
}

// Boulders は初回投入する16のボルダーを返す。
// 値は元データをそのまま保持する（s1b3のimageUrlの欠損もそのまま）。
func Boulders() []model.Boulder {
	return []model.Boulder{
		// Set 1: July Week 1 - Main Wall（非アクティブ）
		{ID: "s1b1", SetID: "set1_july_w1_main", Name: "Greenhorn Gully", Grade: model.GradeV0, BasePoints: model.GradeV0.BasePoints(), ImageURL: "https://picsum.photos/seed/s1_green_v0/600/400"},
		{ID: "s1b2", SetID: "set1_july_w1_main", Name: "Yellow Submarine", Grade: model.GradeV1, BasePoints: model.GradeV1.BasePoints(), ImageURL: "https://picsum.photos/seed/s1_yellow_v1/600/400"},
		{ID: "s1b3", SetID: "set1_july_w1_main", Name: "Blue Streak", Grade: model.GradeV2, BasePoints: model.GradeV2.BasePoints(), ImageURL: "httpsum.photos/seed/s1_blue_v2/600/400"},
		{ID: "s1b4", SetID: "set1_july_w1_main", Name: "Red Arête", Grade: model.GradeV3, BasePoints: model.GradeV3.BasePoints(), ImageURL: "https://picsum.photos/seed/s1_red_v3/600/400"},

		// Set 2: July Week 2 - Slab Zone（非アクティブ）
		{ID: "s2b1", SetID: "set2_july_w2_slab", Name: "Slab Easy Start", Grade: model.GradeV0, BasePoints: model.GradeV0.BasePoints(), ImageURL: "https://picsum.photos/seed/s2_green_v0/600/400"},
		{ID: "s2b2", SetID: "set2_july_w2_slab", Name: "The Orange Slice", Grade: model.GradeV1, BasePoints: model.GradeV1.BasePoints(), ImageURL: "https://picsum.photos/seed/s2_orange_v1/600/400"},
		{ID: "s2b3", SetID: "set2_july_w2_slab", Name: "Purple Haze Slab", Grade: model.GradeV2, BasePoints: model.GradeV2.BasePoints(), ImageURL: "https://picsum.photos/seed/s2_purple_v2/600/400"},
		{ID: "s2b4", SetID: "set2_july_w2_slab", Name: "Red Dot Special", Grade: model.GradeV3, BasePoints: model.GradeV3.BasePoints(), ImageURL: "https://picsum.photos/seed/s2_red_v3/600/400"},

		// Set 3: July Week 3 - The Cave（非アクティブ）
		{ID: "s3b1", SetID: "set3_july_w3_cave", Name: "Cave Dweller Easy", Grade: model.GradeV2, BasePoints: model.GradeV2.BasePoints(), ImageURL: "https://picsum.photos/seed/s3_black_v2/600/400"},
		{ID: "s3b2", SetID: "set3_july_w3_cave", Name: "Bat Hang Traverse", Grade: model.GradeV3, BasePoints: model.GradeV3.BasePoints(), ImageURL: "https://picsum.photos/seed/s3_white_v3/600/400"},
		{ID: "s3b3", SetID: "set3_july_w3_cave", Name: "The Project X", Grade: model.GradeV4, BasePoints: model.GradeV4.BasePoints(), ImageURL: "https://picsum.photos/seed/s3_gold_v4/600/400"},
		{ID: "s3b4", SetID: "set3_july_w3_cave", Name: "Crimson Pinch", Grade: model.GradeV5, BasePoints: model.GradeV5.BasePoints(), ImageURL: "https://picsum.photos/seed/s3_crimson_v5/600/400"},

		// Set 4: July Week 4 - The Overhang（初期アクティブ）
		{ID: "s4b1", SetID: "set4_july_w4_overhang", Name: "Easy Roof Escape", Grade: model.GradeV3, BasePoints: model.GradeV3.BasePoints(), ImageURL: "https://picsum.photos/seed/s4_blue_v3/600/400"},
		{ID: "s4b2", SetID: "set4_july_w4_overhang", Name: "Orange Power Dyno", Grade: model.GradeV4, BasePoints: model.GradeV4.BasePoints(), ImageURL: "https://picsum.photos/seed/s4_orange_v4/600/400"},
		{ID: "s4b3", SetID: "set4_july_w4_overhang", Name: "The White Whale", Grade: model.GradeV5, BasePoints: model.GradeV5.BasePoints(), ImageURL: "https://picsum.photos/seed/s4_white_v5/600/400"},
		{ID: "s4b4", SetID: "set4_july_w4_overhang", Name: "Midnight Train", Grade: model.GradeV6, BasePoints: model.GradeV6.BasePoints(), ImageURL: "https://picsum.photos/seed/s4_black_v6/600/400"},
	}
}
