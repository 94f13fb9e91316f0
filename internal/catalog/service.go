// Package catalog はボルダーセットとボルダーのカタログ管理を提供する。
//
// 不変条件:
//   - アクティブなセットはコレクション全体で常に最大1つ。
//   - ボルダーのBasePointsは常にグレードの基礎ポイント表と一致する。
//   - セットは非アクティブかつ参照ボルダーが0件の場合のみ削除できる。
//
// 状態は呼び出しのたびにキーバリューストアから読み直す。複数ステップの
// 読み書きはアトミックではないが、単一書き込み主体の実行モデルを前提と
// しているため許容する。並行アクセスが生じる移植では各操作の
// read-modify-writeサイクルを相互排他で保護すること。
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hitoshi/boulderlog/internal/kvstore"
	"github.com/hitoshi/boulderlog/internal/metrics"
	"github.com/hitoshi/boulderlog/internal/model"
	"github.com/hitoshi/boulderlog/internal/security"
)

// AddBoulderInput は新規ボルダーの入力を表す。
// BasePointsは含まない。グレードから導出され、直接指定はできない。
type AddBoulderInput struct {
	Name     string
	Grade    model.Grade
	SetID    string
	ImageURL string
}

// Service はカタログ管理のサービス層。
type Service struct {
	kv        *kvstore.Adapter
	sanitizer security.TextSanitizer
	rec       metrics.Recorder
}

// NewService はServiceを生成する。recがnilの場合は何も記録しない。
func NewService(kv *kvstore.Adapter, sanitizer security.TextSanitizer, rec metrics.Recorder) *Service {
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &Service{kv: kv, sanitizer: sanitizer, rec: rec}
}

// ListSets は全セットを挿入順で返す。永続化データがない場合は空スライス。
func (s *Service) ListSets(ctx context.Context) []model.BoulderSet {
	var sets []model.BoulderSet
	s.kv.Load(ctx, kvstore.KeyBoulderSets, &sets)
	return sets
}

// AddSet は新しいセットを作成する。
// 新規セットは常に非アクティブで作成される（自動アクティブ化はしない）。
func (s *Service) AddSet(ctx context.Context, name, description string) *model.BoulderSet {
	sets := s.ListSets(ctx)

	created := model.BoulderSet{
		ID:          uuid.New().String(),
		Name:        s.sanitizer.Sanitize(name),
		Description: s.sanitizer.Sanitize(description),
		IsActive:    false,
	}
	sets = append(sets, created)
	s.kv.Save(ctx, kvstore.KeyBoulderSets, sets)

	slog.Info("boulder set created",
		slog.String("set_id", created.ID),
		slog.String("name", created.Name),
	)
	return &created
}

// UpdateSet は指定IDのセットを全置換で更新する。
// IsActiveの排他制御はActivateSetの責務であり、ここでは渡された値をそのまま保存する。
// 該当IDが存在しない場合は何もしない。
func (s *Service) UpdateSet(ctx context.Context, set model.BoulderSet) {
	sets := s.ListSets(ctx)

	set.Name = s.sanitizer.Sanitize(set.Name)
	set.Description = s.sanitizer.Sanitize(set.Description)

	for i := range sets {
		if sets[i].ID == set.ID {
			sets[i] = set
		}
	}
	s.kv.Save(ctx, kvstore.KeyBoulderSets, sets)
}

// ActivateSet は指定セットをアクティブにし、他のすべてのセットを
// 非アクティブにする（1回の読み取り・全体書き戻しで行う）。
// 存在しないIDを指定した場合は何も変更しない。アクティブなセットが
// 1つもない状態を誤って作らないための仕様。
func (s *Service) ActivateSet(ctx context.Context, setID string) {
	sets := s.ListSets(ctx)

	found := false
	for i := range sets {
		if sets[i].ID == setID {
			found = true
			break
		}
	}
	if !found {
		slog.Warn("activate requested for unknown set", slog.String("set_id", setID))
		return
	}

	for i := range sets {
		sets[i].IsActive = sets[i].ID == setID
	}
	s.kv.Save(ctx, kvstore.KeyBoulderSets, sets)
	s.rec.RecordSetActivated()

	slog.Info("boulder set activated", slog.String("set_id", setID))
}

// DeleteSet は指定セットを削除する。
// 以下の場合は状態を変更せずに失敗を返す:
//   - セットが見つからない
//   - セットがアクティブ（先に非アクティブ化が必要）
//   - セットを参照するボルダーが存在する（件数をメッセージで報告）
func (s *Service) DeleteSet(ctx context.Context, setID string) model.Result {
	sets := s.ListSets(ctx)
	boulders := s.ListBoulders(ctx)

	var target *model.BoulderSet
	for i := range sets {
		if sets[i].ID == setID {
			target = &sets[i]
			break
		}
	}
	if target == nil {
		return model.Result{Success: false, Message: "指定されたセットが見つかりません。"}
	}
	if target.IsActive {
		return model.Result{Success: false, Message: "アクティブなセットは削除できません。先に非アクティブ化してください。"}
	}

	count := 0
	for _, b := range boulders {
		if b.SetID == setID {
			count++
		}
	}
	if count > 0 {
		return model.Result{
			Success: false,
			Message: fmt.Sprintf("セット「%s」には%d件のボルダーが含まれているため削除できません。先にボルダーを削除するか別のセットへ移動してください。", target.Name, count),
		}
	}

	name := target.Name
	remaining := make([]model.BoulderSet, 0, len(sets)-1)
	for _, set := range sets {
		if set.ID != setID {
			remaining = append(remaining, set)
		}
	}
	s.kv.Save(ctx, kvstore.KeyBoulderSets, remaining)

	slog.Info("boulder set deleted", slog.String("set_id", setID))
	return model.Result{Success: true, Message: fmt.Sprintf("セット「%s」を削除しました。", name)}
}

// ListBoulders は全ボルダーを挿入順で返す。永続化データがない場合は空スライス。
func (s *Service) ListBoulders(ctx context.Context) []model.Boulder {
	var boulders []model.Boulder
	s.kv.Load(ctx, kvstore.KeyBoulders, &boulders)
	return boulders
}

// ListBouldersBySet は指定セットに属するボルダーを挿入順で返す。
func (s *Service) ListBouldersBySet(ctx context.Context, setID string) []model.Boulder {
	var result []model.Boulder
	for _, b := range s.ListBoulders(ctx) {
		if b.SetID == setID {
			result = append(result, b)
		}
	}
	return result
}

// AddBoulder は新しいボルダーを作成する。
// BasePointsはグレードの基礎ポイント表から計算し、呼び出し側からは指定できない。
func (s *Service) AddBoulder(ctx context.Context, input AddBoulderInput) (*model.Boulder, error) {
	if !input.Grade.Valid() {
		return nil, model.NewInvalidGradeError(input.Grade)
	}

	boulders := s.ListBoulders(ctx)

	created := model.Boulder{
		ID:         uuid.New().String(),
		SetID:      input.SetID,
		Name:       s.sanitizer.Sanitize(input.Name),
		Grade:      input.Grade,
		BasePoints: input.Grade.BasePoints(),
		ImageURL:   input.ImageURL,
	}
	boulders = append(boulders, created)
	s.kv.Save(ctx, kvstore.KeyBoulders, boulders)

	slog.Info("boulder created",
		slog.String("boulder_id", created.ID),
		slog.String("set_id", created.SetID),
		slog.String("grade", string(created.Grade)),
	)
	return &created, nil
}

// UpdateBoulder は指定IDのボルダーを全置換で更新する。
// BasePointsは渡されたグレードから常に再計算する。グレード変更時に
// 古いBasePointsが紛れ込むのを防ぐため、呼び出し側の値は信用しない。
// 該当IDが存在しない場合は何もしない。
func (s *Service) UpdateBoulder(ctx context.Context, boulder model.Boulder) error {
	if !boulder.Grade.Valid() {
		return model.NewInvalidGradeError(boulder.Grade)
	}

	boulders := s.ListBoulders(ctx)

	boulder.Name = s.sanitizer.Sanitize(boulder.Name)
	boulder.BasePoints = boulder.Grade.BasePoints()

	for i := range boulders {
		if boulders[i].ID == boulder.ID {
			boulders[i] = boulder
		}
	}
	s.kv.Save(ctx, kvstore.KeyBoulders, boulders)
	return nil
}

// DeleteBoulder は指定ボルダーを無条件に削除する。
// 削除済みボルダーを参照する完登記録はそのまま残る（非正規化された
// スナップショットにより過去の表示は保たれるため、後始末はしない）。
func (s *Service) DeleteBoulder(ctx context.Context, boulderID string) model.Result {
	boulders := s.ListBoulders(ctx)

	var target *model.Boulder
	for i := range boulders {
		if boulders[i].ID == boulderID {
			target = &boulders[i]
			break
		}
	}
	if target == nil {
		return model.Result{Success: false, Message: "指定されたボルダーが見つかりません。"}
	}

	name := target.Name
	remaining := make([]model.Boulder, 0, len(boulders)-1)
	for _, b := range boulders {
		if b.ID != boulderID {
			remaining = append(remaining, b)
		}
	}
	s.kv.Save(ctx, kvstore.KeyBoulders, remaining)

	slog.Info("boulder deleted", slog.String("boulder_id", boulderID))
	return model.Result{Success: true, Message: fmt.Sprintf("ボルダー「%s」を削除しました。", name)}
}

// GetActiveSet は現在アクティブなセットを返す。存在しない場合はnil。
func (s *Service) GetActiveSet(ctx context.Context) *model.BoulderSet {
	for _, set := range s.ListSets(ctx) {
		if set.IsActive {
			return &set
		}
	}
	return nil
}

// GetSetByID は指定IDのセットを返す。見つからない場合はnil。
func (s *Service) GetSetByID(ctx context.Context, setID string) *model.BoulderSet {
	for _, set := range s.ListSets(ctx) {
		if set.ID == setID {
			return &set
		}
	}
	return nil
}

// GetBoulderByID は指定IDのボルダーを返す。見つからない場合はnil。
func (s *Service) GetBoulderByID(ctx context.Context, boulderID string) *model.Boulder {
	for _, b := range s.ListBoulders(ctx) {
		if b.ID == boulderID {
			return &b
		}
	}
	return nil
}
