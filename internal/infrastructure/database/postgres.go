package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient PostgreSQL直接接続クライアント
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient 新しいPostgreSQLクライアントを作成
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	connStr, err := postgresConnString()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL接続の初期化に失敗: %w", err)
	}

	// 接続テスト
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("PostgreSQLへの接続に失敗: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// NewPostgreSQLClientWithRetry 接続に失敗した場合に指定回数までリトライする
func NewPostgreSQLClientWithRetry(maxAttempts int, interval time.Duration) (*PostgreSQLClient, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err := NewPostgreSQLClient()
		if err == nil {
			return client, nil
		}
		lastErr = err
		if attempt < maxAttempts {
			time.Sleep(interval)
		}
	}
	return nil, fmt.Errorf("PostgreSQL接続のリトライ上限に到達 (%d回): %w", maxAttempts, lastErr)
}

// postgresConnString 環境変数から接続文字列を組み立てる
// DATABASE_URLがあればそれを優先し、無ければSupabaseの接続情報を使う
func postgresConnString() (string, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn, nil
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")

	if supabaseURL == "" {
		return "", fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	}
	if supabasePassword == "" {
		return "", fmt.Errorf("SUPABASE_DB_PASSWORD環境変数が設定されていません")
	}

	// https://xxx.supabase.co -> xxx.supabase.co
	host := strings.TrimPrefix(supabaseURL, "https://")

	return fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, supabasePassword,
	), nil
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQLクライアントが初期化されていません")
	}
	return pc.DB.Ping()
}
