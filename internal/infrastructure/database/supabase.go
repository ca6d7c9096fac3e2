package database

import (
	"fmt"
	"log"
	"os"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient PostgREST経由で地域カタログを読むためのクライアント
type SupabaseClient struct {
	Client *supabase.Client
	url    string
}

// NewSupabaseClient SUPABASE_URLとSUPABASE_ANON_KEYからクライアントを作成
func NewSupabaseClient() (*SupabaseClient, error) {
	return NewSupabaseClientWithKey(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY"))
}

// NewSupabaseClientWithKey URLとAPIキーを直接指定してクライアントを作成
func NewSupabaseClientWithKey(url, anonKey string) (*SupabaseClient, error) {
	switch {
	case url == "":
		return nil, fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	case anonKey == "":
		return nil, fmt.Errorf("SUPABASE_ANON_KEY環境変数が設定されていません")
	}

	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの初期化に失敗: %w", err)
	}
	return &SupabaseClient{Client: client, url: url}, nil
}

// GetClient Supabaseクライアントを取得
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck tableに件数だけのHEADリクエストを送り、到達できてテーブルが読めるかを確認する
func (sc *SupabaseClient) HealthCheck(table string) error {
	if sc == nil || sc.Client == nil {
		return fmt.Errorf("Supabaseクライアントが初期化されていません")
	}
	_, count, err := sc.Client.From(table).Select("name", "exact", true).Execute()
	if err != nil {
		return fmt.Errorf("Supabaseの%sテーブルに接続できません: %w", table, err)
	}
	log.Printf("✅ Supabase接続確認 (%s: %s, %d件)", sc.url, table, count)
	return nil
}
