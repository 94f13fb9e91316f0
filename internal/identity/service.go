// Package identity はユーザー管理とセッション制御を提供する。
//
// パスワードは平文で保存・比較する。認証セキュリティは本システムの
// 明示的な非目標であり、ハッシュ化や多重化は行わない。
// セッションは「最後にログインしたユーザーID」を指すポインタキー1つで、
// トークンや有効期限は持たない。
package identity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/boulderlog/internal/kvstore"
	"github.com/hitoshi/boulderlog/internal/metrics"
	"github.com/hitoshi/boulderlog/internal/model"
)

// Service はユーザー管理のサービス層。
type Service struct {
	kv  *kvstore.Adapter
	rec metrics.Recorder
}

// NewService はServiceを生成する。recがnilの場合は何も記録しない。
func NewService(kv *kvstore.Adapter, rec metrics.Recorder) *Service {
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &Service{kv: kv, rec: rec}
}

// ListUsers は全ユーザーを返す。永続化データがない場合は空スライス。
func (s *Service) ListUsers(ctx context.Context) []model.User {
	var users []model.User
	s.kv.Load(ctx, kvstore.KeyUsers, &users)
	return users
}

// Register は新規ユーザーを登録し、セッションを確立する。
// ログイン名は大文字小文字を区別して完全一致で重複を判定し、
// 重複時はユーザーコレクションを変更せずに失敗を返す。
func (s *Service) Register(ctx context.Context, userID, password string) (*model.User, error) {
	users := s.ListUsers(ctx)

	for _, u := range users {
		if u.UserID == userID {
			return nil, model.NewDuplicateUserIDError(userID)
		}
	}

	created := model.User{
		ID:       uuid.New().String(),
		UserID:   userID,
		Password: password,
	}
	users = append(users, created)
	s.kv.Save(ctx, kvstore.KeyUsers, users)
	s.kv.Save(ctx, kvstore.KeyLoggedInUserID, created.ID)
	s.rec.RecordUserRegistered()

	slog.Info("user registered", slog.String("user_id", created.ID))
	return &created, nil
}

// Login はログイン名とパスワードの両方が完全一致した場合のみ
// セッションを確立してユーザーを返す。
func (s *Service) Login(ctx context.Context, userID, password string) (*model.User, error) {
	for _, u := range s.ListUsers(ctx) {
		if u.UserID == userID && u.Password == password {
			s.kv.Save(ctx, kvstore.KeyLoggedInUserID, u.ID)
			slog.Info("user logged in", slog.String("user_id", u.ID))
			return &u, nil
		}
	}
	return nil, model.NewInvalidCredentialsError()
}

// Logout はセッションポインタを消去する。冪等で、未ログインでも安全。
func (s *Service) Logout(ctx context.Context) {
	s.kv.Clear(ctx, kvstore.KeyLoggedInUserID)
}

// CurrentUser は記録されたセッションポインタから現在のユーザーを復元する。
// ポインタが存在しないか、指す先のユーザーが既に存在しない場合はnilを返し、
// 失効したポインタは消去する。
func (s *Service) CurrentUser(ctx context.Context) *model.User {
	var storedID string
	if !s.kv.Load(ctx, kvstore.KeyLoggedInUserID, &storedID) || storedID == "" {
		return nil
	}

	for _, u := range s.ListUsers(ctx) {
		if u.ID == storedID {
			return &u
		}
	}

	slog.Warn("stale session pointer cleared", slog.String("user_id", storedID))
	s.kv.Clear(ctx, kvstore.KeyLoggedInUserID)
	return nil
}

// GetUserByID は指定IDのユーザーを返す。見つからない場合はnil。
func (s *Service) GetUserByID(ctx context.Context, id string) *model.User {
	for _, u := range s.ListUsers(ctx) {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

// ReconcileAccount は固定シードアカウントを正準値に揃える。
// アカウントが存在しない場合は正準値のまま追加し、存在する場合は
// 内部ID・管理者フラグ・会員権フィールドのずれを修正する。
// パスワードは利用者が変更し得るため修正対象に含めない。
// この処理は冪等で、初期化のたびに実行される。
func (s *Service) ReconcileAccount(ctx context.Context, canonical model.User) {
	users := s.ListUsers(ctx)

	for i := range users {
		if users[i].UserID != canonical.UserID {
			continue
		}

		changed := false
		if users[i].ID != canonical.ID {
			users[i].ID = canonical.ID
			changed = true
		}
		if users[i].IsAdmin != canonical.IsAdmin {
			users[i].IsAdmin = canonical.IsAdmin
			changed = true
		}
		if users[i].MembershipType != canonical.MembershipType ||
			!equalTimePtr(users[i].MembershipExpiryDate, canonical.MembershipExpiryDate) ||
			!equalIntPtr(users[i].PassesLeft, canonical.PassesLeft) {
			users[i].MembershipType = canonical.MembershipType
			users[i].MembershipExpiryDate = canonical.MembershipExpiryDate
			users[i].PassesLeft = canonical.PassesLeft
			changed = true
		}

		if changed {
			s.kv.Save(ctx, kvstore.KeyUsers, users)
			slog.Info("seed account reconciled", slog.String("user_id", canonical.ID))
		}
		return
	}

	users = append(users, canonical)
	s.kv.Save(ctx, kvstore.KeyUsers, users)
	slog.Info("seed account created", slog.String("user_id", canonical.ID))
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
