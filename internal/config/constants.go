// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "study-scheduler"
	AppVersion = "0.3.0"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"
	DefaultDBDriver   = DriverPostgres
	DefaultSQLiteDSN  = "file::memory:?cache=shared"

	MaxReviewLimit       = 30
	DefaultVocabLimit    = 5
	DefaultVocabLimitMax = 50

	DefaultTimezone            = "Asia/Seoul"
	DefaultTimezoneOffsetHours = 9

	DefaultInitialEase = 2.5
	DefaultEasyBonus   = 0.10

	DefaultRedisAddr      = "localhost:6379"
	DefaultBundleCacheTTL = 36 * time.Hour

	DefaultMailerType = "log"
	DefaultMailFrom   = "no-reply@study-scheduler.local"
	DefaultSMTPPort   = 1025
)
