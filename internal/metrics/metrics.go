// Package metrics はPrometheusメトリクスの収集を提供する。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder はメトリクス収集のインターフェース。
// ストアやサービス層から利用する。
type Recorder interface {
	RecordClimbLogged(score int)
	RecordUserRegistered()
	RecordSetActivated()
	RecordStoreReadError(key string)
	RecordStoreWriteError(key string)
}

// NopRecorder は何も記録しないRecorder実装。
// メトリクス収集が不要な場合やテストで使用する。
type NopRecorder struct{}

func (NopRecorder) RecordClimbLogged(score int)      {}
func (NopRecorder) RecordUserRegistered()            {}
func (NopRecorder) RecordSetActivated()              {}
func (NopRecorder) RecordStoreReadError(key string)  {}
func (NopRecorder) RecordStoreWriteError(key string) {}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	climbsLogged    prometheus.Counter
	scoreAwarded    prometheus.Counter
	usersRegistered prometheus.Counter
	setsActivated   prometheus.Counter
	kvReadErrors    *prometheus.CounterVec
	kvWriteErrors   *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		climbsLogged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boulderlog_climbs_logged_total",
			Help: "登録された完登記録の合計数",
		}),
		scoreAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boulderlog_score_awarded_total",
			Help: "付与されたスコアの合計",
		}),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boulderlog_users_registered_total",
			Help: "登録されたユーザーの合計数",
		}),
		setsActivated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boulderlog_sets_activated_total",
			Help: "セットのアクティブ化操作の合計数",
		}),
		kvReadErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boulderlog_kv_read_errors_total",
			Help: "キーバリューストア読み取り失敗のキー別合計数",
		}, []string{"key"}),
		kvWriteErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boulderlog_kv_write_errors_total",
			Help: "キーバリューストア書き込み失敗のキー別合計数",
		}, []string{"key"}),
	}

	reg.MustRegister(
		c.climbsLogged,
		c.scoreAwarded,
		c.usersRegistered,
		c.setsActivated,
		c.kvReadErrors,
		c.kvWriteErrors,
	)

	return c
}

// RecordClimbLogged は完登記録の登録と付与スコアを記録する。
func (c *Collector) RecordClimbLogged(score int) {
	c.climbsLogged.Inc()
	c.scoreAwarded.Add(float64(score))
}

// RecordUserRegistered はユーザー登録を記録する。
func (c *Collector) RecordUserRegistered() {
	c.usersRegistered.Inc()
}

// RecordSetActivated はセットのアクティブ化を記録する。
func (c *Collector) RecordSetActivated() {
	c.setsActivated.Inc()
}

// RecordStoreReadError はキーバリューストアの読み取り失敗を記録する。
func (c *Collector) RecordStoreReadError(key string) {
	c.kvReadErrors.WithLabelValues(key).Inc()
}

// RecordStoreWriteError はキーバリューストアの書き込み失敗を記録する。
func (c *Collector) RecordStoreWriteError(key string) {
	c.kvWriteErrors.WithLabelValues(key).Inc()
}
