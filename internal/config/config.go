package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"DialectGlobe-App/internal/domain/model"
)

// 地域カタログの読み込み元
const (
	RegionSourceStatic   = "static"
	RegionSourcePostgres = "postgres"
	RegionSourceSupabase = "supabase"
)

// セッションの保存先
const (
	SessionStoreMemory    = "memory"
	SessionStoreFirestore = "firestore"
)

// Config サーバー全体の設定
type Config struct {
	Port               string
	RegionSource       string
	SessionStore       string
	SessionTTL         time.Duration
	MarkerMode         model.MarkerMode
	AvoidRepeat        bool
	FrameRate          int
	StaticDir          string
	TexturePath        string
	FirestoreProjectID string
}

// Load .envを読み込んでから環境変数で設定を組み立てる
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("⚠️ .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv 環境変数だけから設定を組み立てる
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		RegionSource:       strings.ToLower(getEnv("REGION_SOURCE", RegionSourceStatic)),
		SessionStore:       strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		MarkerMode:         model.MarkerMode(strings.ToLower(getEnv("MARKER_MODE", string(model.MarkerModeLatest)))),
		StaticDir:          getEnv("STATIC_DIR", "web"),
		TexturePath:        getEnv("TEXTURE_PATH", "assets/earth.jpg"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
	}

	ttlHours, err := getInt("SESSION_TTL_HOURS", 2)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	if cfg.FrameRate, err = getInt("FRAME_RATE", 60); err != nil {
		return nil, err
	}
	if cfg.AvoidRepeat, err = getBool("QUIZ_AVOID_REPEAT", false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 設定値の組み合わせを検証する
func (c *Config) Validate() error {
	switch c.RegionSource {
	case RegionSourceStatic, RegionSourcePostgres, RegionSourceSupabase:
	default:
		return fmt.Errorf("REGION_SOURCEが不正です: %s (static, postgres, supabase)", c.RegionSource)
	}

	switch c.SessionStore {
	case SessionStoreMemory:
	case SessionStoreFirestore:
		if c.FirestoreProjectID == "" {
			return fmt.Errorf("SESSION_STORE=firestore にはFIRESTORE_PROJECT_IDが必要です")
		}
	default:
		return fmt.Errorf("SESSION_STOREが不正です: %s (memory, firestore)", c.SessionStore)
	}

	if !c.MarkerMode.IsValid() {
		return fmt.Errorf("MARKER_MODEが不正です: %s (latest, trail)", c.MarkerMode)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURSは1以上である必要があります")
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("FRAME_RATEは1以上である必要があります")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%sは整数である必要があります: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%sは真偽値である必要があります: %w", key, err)
	}
	return b, nil
}
