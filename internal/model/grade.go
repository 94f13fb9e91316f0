// Package model はドメインモデルを定義する。
package model

// Grade はボルダーの難易度グレードを表す。
// V0（最易）からV10（最難）までの全順序を持つ。
type Grade string

const (
	GradeV0  Grade = "V0"
	GradeV1  Grade = "V1"
	GradeV2  Grade = "V2"
	GradeV3  Grade = "V3"
	GradeV4  Grade = "V4"
	GradeV5  Grade = "V5"
	GradeV6  Grade = "V6"
	GradeV7  Grade = "V7"
	GradeV8  Grade = "V8"
	GradeV9  Grade = "V9"
	GradeV10 Grade = "V10"
)

// GradesOrdered は全グレードを易しい順に並べたスライス。
// UIのグレード選択肢やランキング表示の順序に使用する。
var GradesOrdered = []Grade{
	GradeV0, GradeV1, GradeV2, GradeV3, GradeV4,
	GradeV5, GradeV6, GradeV7, GradeV8, GradeV9, GradeV10,
}

// gradeBasePoints はグレードごとの基礎ポイント表。
// V0=100から1グレードごとに+100。
var gradeBasePoints = map[Grade]int{
	GradeV0:  100,
	GradeV1:  200,
	GradeV2:  300,
	GradeV3:  400,
	GradeV4:  500,
	GradeV5:  600,
	GradeV6:  700,
	GradeV7:  800,
	GradeV8:  900,
	GradeV9:  1000,
	GradeV10: 1100,
}

// BasePoints はグレードに対応する基礎ポイントを返す。
// 未知のグレードの場合は0を返す。
func (g Grade) BasePoints() int {
	return gradeBasePoints[g]
}

// Valid はグレードが定義済みのものかを返す。
func (g Grade) Valid() bool {
	_, ok := gradeBasePoints[g]
	return ok
}
