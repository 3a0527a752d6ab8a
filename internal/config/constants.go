// internal/config/constants.go
package config

import (
	"strings"
	"time"
)

// アプリケーション情報
const (
	AppName    = "VocabLearn"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultReviewErrorThreshold = 0
	DefaultAttemptHistoryLimit  = 50
	DefaultTestMaxScore         = 100
	DefaultAccessTokenTTL       = 24 * time.Hour
	DefaultCacheTTL             = 10 * time.Minute
	DefaultEventsExchange       = "vocab.events"
)

var envKeyReplacer = strings.NewReplacer(".", "_")
